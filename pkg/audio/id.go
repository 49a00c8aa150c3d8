package audio

import (
	"strconv"

	"github.com/google/uuid"
)

// ID is an opaque identifier naming a node uniquely within a graph.
// Two IDs are equal iff their underlying strings are equal.
type ID string

// DestinationID is the fixed identifier of the destination node that every
// graph created by [New] contains.
const DestinationID ID = "_destination"

// IDFromInt returns the identifier holding the decimal text form of n.
func IDFromInt(n int) ID { return ID(strconv.Itoa(n)) }

// RandomID returns a fresh globally unique identifier. It is used by
// callers (and the manifest loader) that need a node id but do not care
// about its spelling.
func RandomID() ID { return ID(uuid.NewString()) }

// String returns the underlying text.
func (id ID) String() string { return string(id) }
