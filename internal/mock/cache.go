package mock

import "context"

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	Entries map[string][]byte

	// errors
	GetErr        error
	SetErr        error
	InvalidateErr error

	// call flags
	GetCalled        bool
	SetCalled        bool
	InvalidateCalled bool

	// recorded keys
	GetKeys []string
	SetKeys []string
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	c.GetCalled = true
	c.GetKeys = append(c.GetKeys, key)
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	return c.Entries[key], nil
}

func (c *Cache) Set(ctx context.Context, key string, data []byte) error {
	c.SetCalled = true
	c.SetKeys = append(c.SetKeys, key)
	if c.SetErr != nil {
		return c.SetErr
	}
	if c.Entries == nil {
		c.Entries = make(map[string][]byte)
	}
	c.Entries[key] = data
	return nil
}

func (c *Cache) InvalidateAll(ctx context.Context) (int64, error) {
	c.InvalidateCalled = true
	if c.InvalidateErr != nil {
		return 0, c.InvalidateErr
	}
	n := int64(len(c.Entries))
	c.Entries = nil
	return n, nil
}
