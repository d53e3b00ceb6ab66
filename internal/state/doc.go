// Package state tracks processed webhook delivery ids and the representative
// type that currently owns each conversation. Two backends exist: an
// in-process TTL cache and a SQLite store that survives restarts.
package state
