package storage

import "sync"

// keyedMutex oturum anahtarı başına tek kilit. Farklı oturumlar birbirini
// bloklamaz; aynı oturumdan eşzamanlı turlar sıraya girer.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sessionLock)}
}

// Acquire anahtarın kilidini alır; dönen fonksiyon kilidi bırakır.
// Kilit kullanılmadığında map'ten düşer, sınırsız büyüme olmaz.
func (k *keyedMutex) Acquire(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sessionLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
