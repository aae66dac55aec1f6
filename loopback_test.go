//go:build linux

package bitcore

import (
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// openLoopback creates a pty pair as a stand-in for a physical serial
// device: the returned Serial drives the slave side, the master *os.File is
// the peer. The master is switched to raw mode so no echo or newline
// translation pollutes the byte stream.
func openLoopback(t *testing.T, opts ...Option) (*Serial, *os.File) {
	t.Helper()

	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	makeRaw(t, master)

	base := []Option{
		WithTimeout(200 * time.Millisecond),
		WithRetries(0),
	}
	s, err := Open(slave.Name(), append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s, master
}

func makeRaw(t *testing.T, f *os.File) {
	t.Helper()

	fd := int(f.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	require.NoError(t, err)

	termios.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN

	require.NoError(t, unix.IoctlSetTermios(fd, unix.TCSETS, termios))
}

func TestLoopbackPingPong(t *testing.T) {
	s, master := openLoopback(t)

	n, err := s.Write([]byte("ping"))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	buf := make([]byte, 4)
	n, err = master.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("ping"), buf)

	_, err = master.Write([]byte("pong"))
	require.NoError(t, err)

	reply := make([]byte, 4)
	require.NoError(t, s.ReadFull(reply))
	require.Equal(t, []byte("pong"), reply)
}

func TestLoopbackWriteStringReadLine(t *testing.T) {
	s, master := openLoopback(t)

	_, err := master.Write([]byte("abc\n"))
	require.NoError(t, err)

	line, err := s.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "abc", line)
}

func TestLoopbackReadLineStripsCarriageReturn(t *testing.T) {
	s, master := openLoopback(t)

	_, err := master.Write([]byte("AT+GMR\r\n"))
	require.NoError(t, err)

	line, err := s.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "AT+GMR", line)
}

func TestLoopbackReadLineTimesOutWithoutNewline(t *testing.T) {
	s, master := openLoopback(t, WithTimeout(100*time.Millisecond))

	_, err := master.Write([]byte("partial"))
	require.NoError(t, err)

	start := time.Now()
	line, err := s.ReadLine()
	require.ErrorIs(t, err, ErrTimeout)
	require.Empty(t, line)
	require.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestLoopbackWriteStringRoundTrip(t *testing.T) {
	s, master := openLoopback(t)

	n, err := s.WriteString("hello device\n")
	require.NoError(t, err)
	require.Equal(t, 13, n)

	buf := make([]byte, 13)
	total := 0
	for total < len(buf) {
		n, err := master.Read(buf[total:])
		require.NoError(t, err)
		total += n
	}
	require.Equal(t, "hello device\n", string(buf))
}

func TestLoopbackReconnectAfterClose(t *testing.T) {
	s, master := openLoopback(t)

	require.NoError(t, s.Close())
	require.False(t, s.Connected())

	// The next operation reopens the same pty slave.
	n, err := s.Write([]byte("back"))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	buf := make([]byte, 4)
	_, err = master.Read(buf)
	require.NoError(t, err)
	require.Equal(t, []byte("back"), buf)
}
