// Package http implements the loopback query endpoint of vikeypass.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as bearer authentication, request tracing, access logging
// and panic recovery are handled here before requests reach the vault
// service. Every request decrypts the vault afresh; nothing is cached
// between requests and nothing is ever written.
package http
