package storage

// KV is the persistence collaborator: a string-keyed store of serialized
// collections. Implementations must tolerate missing keys; the second
// return value of Get reports whether the key was present.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}
