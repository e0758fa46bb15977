// Package arptab implements an IPv4 neighbor cache: a fixed-capacity table
// mapping on-link IPv4 addresses to their 48-bit hardware addresses, built
// purely from observed traffic and queried by the local stack.
//
// The cache is organized as two perpetually running state machines sharing
// one table. The resolver services lookups, applying routing shortcuts
// (broadcast, loopback, local address, cached gateway, last answer) before
// scanning the table, and triggers rate-limited resolution requests for
// missing or stale entries. The learner consumes (IP, hardware address)
// pairs snooped from inbound frames, filters out addresses not worth
// storing, and writes entries, evicting the least recently seen record when
// the table is full. Both machines advance one table slot per call to
// [Cache.Poll] and share their reads through a match latch so that a slot
// read by one machine can satisfy the other machine's scan.
//
// Cache methods are not safe for concurrent use; the caller serializes
// access. Time is modeled as a 20-bit wrapping tick counter with a nominal
// 100ms period, advanced by the caller via [Cache.Tick].
package arptab
