// Package social implements profiles, contact lists, and the post feed
// served by the REST layer.
package social
