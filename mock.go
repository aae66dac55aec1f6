package bitcore

import "sync"

// MockTransport implements Transport for testing. Reads drain ReadData;
// an empty ReadData behaves like a read timeout (0, nil). Each Write is
// recorded as one entry in Writes so callers can assert that concurrent
// writes were not interleaved.
type MockTransport struct {
	mu sync.Mutex

	ReadData []byte
	Writes   [][]byte

	ReadErr  error
	WriteErr error
	CloseErr error

	Closed     bool
	ReadCalls  int
	WriteCalls int
}

func (m *MockTransport) Read(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReadCalls++
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	if len(m.ReadData) == 0 {
		return 0, nil
	}

	n := copy(p, m.ReadData)
	m.ReadData = m.ReadData[n:]
	return n, nil
}

func (m *MockTransport) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCalls++
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}

	buf := make([]byte, len(p))
	copy(buf, p)
	m.Writes = append(m.Writes, buf)
	return len(p), nil
}

func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Closed = true
	return m.CloseErr
}

func (m *MockTransport) Drain() error { return nil }

// Written returns all recorded writes concatenated in order.
func (m *MockTransport) Written() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []byte
	for _, w := range m.Writes {
		out = append(out, w...)
	}
	return out
}

// MockOpener returns an Opener that hands out the given transports in
// sequence, one per open call, and counts the opens. It returns err for
// every call once the transports are exhausted, or immediately when err is
// set and no transports are given.
func MockOpener(err error, transports ...*MockTransport) (Opener, *int) {
	opens := new(int)
	opener := func(device string, cfg Config) (Transport, error) {
		i := *opens
		*opens = i + 1
		if i < len(transports) {
			return transports[i], nil
		}
		if err != nil {
			return nil, err
		}
		return &MockTransport{}, nil
	}
	return opener, opens
}
