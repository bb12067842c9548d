// Package utils provides small general-purpose helpers shared by the client
// and the gateway: UUID generation for attempt and trace ids, keyed one-way
// hashing for identity records, and JSON response writing.
package utils
