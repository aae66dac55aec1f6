package bitcore

import "sync"

// slot is the single source of truth for connection state: it holds zero or
// one live Transport behind a mutex. Every handle sharing a device shares one
// slot, and every access to the Transport happens with the lock held.
type slot struct {
	mu sync.Mutex
	tr Transport
}

// connect opens a Transport into the slot. Opening an already populated slot
// is a no-op.
func (s *slot) connect(device string, cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectLocked(device, cfg)
}

// connectLocked requires s.mu to be held.
func (s *slot) connectLocked(device string, cfg Config) error {
	if s.tr != nil {
		return nil
	}

	opener := cfg.opener
	if opener == nil {
		opener = openSerialPort
	}

	tr, err := opener(device, cfg)
	if err != nil {
		return &ConnectError{Device: device, Err: err}
	}
	s.tr = tr
	return nil
}

// disconnect closes and discards the Transport. The slot is emptied even
// when the close fails, so a stale handle is never kept around. Already
// empty slots succeed as a no-op.
func (s *slot) disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tr == nil {
		return nil
	}

	err := s.tr.Close()
	s.tr = nil
	return err
}

// dropLocked discards the Transport after a failed operation so the next
// attempt is forced through a reconnect. Requires s.mu to be held.
func (s *slot) dropLocked() {
	if s.tr == nil {
		return
	}
	s.tr.Close()
	s.tr = nil
}

// connected reports whether the slot currently holds a Transport.
func (s *slot) connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tr != nil
}
