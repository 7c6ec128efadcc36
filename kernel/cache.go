package kernel

import "sync"

// cacheKey identifies a kernel by generator, size and sigma.
type cacheKey struct {
	kind  byte
	size  int
	sigma float64
}

// kernelCache caches generated kernels. Cached slices are shared between
// callers and must not be modified.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[cacheKey][]float64
	maxLen int
}

var defaultCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[cacheKey][]float64),
		maxLen: maxLen,
	}
}

// get returns the cached kernel for key or generates and stores it.
func (c *kernelCache) get(key cacheKey, gen func(int, float64) ([]float64, error)) ([]float64, error) {
	c.mu.RLock()
	if k, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return k, nil
	}
	c.mu.RUnlock()

	k, err := gen(key.size, key.sigma)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Evict half; kernels are cheap to regenerate.
		count := 0
		for key := range c.cache {
			delete(c.cache, key)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = k
	c.mu.Unlock()
	return k, nil
}

func (c *kernelCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// CachedGaussian is Gaussian backed by a process-wide cache.
// The returned slice must not be modified.
func CachedGaussian(size int, sigma float64) ([]float64, error) {
	return defaultCache.get(cacheKey{kind: 'g', size: size, sigma: sigma}, Gaussian)
}

// CachedSpatialMatrix is SpatialMatrix backed by a process-wide cache.
// The returned slice must not be modified.
func CachedSpatialMatrix(size int, sigma float64) ([]float64, error) {
	return defaultCache.get(cacheKey{kind: 's', size: size, sigma: sigma}, SpatialMatrix)
}
