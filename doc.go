// Package main provides the entry point for naptr-editor, a command line
// tool that loads the NAPTR records of a DNS zone file, keeps them ordered
// by order and preference, edits them and writes them back. Records can be
// validated against DNS presentation rules with miekg/dns and published to
// a PowerDNS server.
package main
