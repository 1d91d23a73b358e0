package repository

type KVRepository interface {
	Get(key string) (value string, found bool, err error)
	Put(key, value string) error
	Delete(keys ...string) error
	Keys() ([]string, error)
}
