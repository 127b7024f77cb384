package common

// DefaultStorageKey is the well-known key holding the serialized record collection.
const DefaultStorageKey = "radian"

// UserIDPrefix prefixes every generated record identifier.
const UserIDPrefix = "user_"
