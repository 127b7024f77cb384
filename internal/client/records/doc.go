// Package records persists the user record collection.
//
// The whole collection lives as one JSON object, id -> user, under a single
// key of a kv.Repository. Every mutation is a full read-modify-write of that
// blob. Backends implementing kv.Updater make the cycle atomic; on the others
// concurrent writers race and the last one wins.
//
// A blob that is not valid JSON or does not match the embedded schema is
// treated as corrupt. Load degrades to an empty collection and logs a
// warning; RemoveByIDs and Upsert refuse to touch it and return
// common.ErrCorruptBlob; Save and Reset overwrite it.
package records
