package ssh

import (
	"io"
)

// MockClient is the mock implementation of the Client interface
type MockClient struct {
	DialFunc func(network, addr string, config *ClientConfig) (ClientConn, error)
}

// NewMockSSHClient creates a new MockClient instance
func NewMockSSHClient() *MockClient {
	return &MockClient{}
}

// Dial calls the custom DialFunc if provided.
func (m *MockClient) Dial(network, addr string, config *ClientConfig) (ClientConn, error) {
	if m.DialFunc != nil {
		return m.DialFunc(network, addr, config)
	}
	return &MockClientConn{}, nil
}

// MockClientConn is the mock implementation of the ClientConn interface
type MockClientConn struct {
	CloseFunc      func() error
	NewSessionFunc func() (Session, error)
}

// Close calls the custom CloseFunc if provided.
func (m *MockClientConn) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// NewSession calls the custom NewSessionFunc if provided.
func (m *MockClientConn) NewSession() (Session, error) {
	if m.NewSessionFunc != nil {
		return m.NewSessionFunc()
	}
	return &MockSession{}, nil
}

// MockSession is the mock implementation of the Session interface
type MockSession struct {
	RunFunc            func(cmd string) error
	CombinedOutputFunc func(cmd string) ([]byte, error)
	SetStdinFunc       func(r io.Reader)
	SetStdoutFunc      func(w io.Writer)
	SetStderrFunc      func(w io.Writer)
	CloseFunc          func() error
}

// Run calls the custom RunFunc if provided.
func (m *MockSession) Run(cmd string) error {
	if m.RunFunc != nil {
		return m.RunFunc(cmd)
	}
	return nil
}

// CombinedOutput calls the custom CombinedOutputFunc if provided.
func (m *MockSession) CombinedOutput(cmd string) ([]byte, error) {
	if m.CombinedOutputFunc != nil {
		return m.CombinedOutputFunc(cmd)
	}
	return nil, nil
}

// SetStdin calls the custom SetStdinFunc if provided.
func (m *MockSession) SetStdin(r io.Reader) {
	if m.SetStdinFunc != nil {
		m.SetStdinFunc(r)
	}
}

// SetStdout calls the custom SetStdoutFunc if provided.
func (m *MockSession) SetStdout(w io.Writer) {
	if m.SetStdoutFunc != nil {
		m.SetStdoutFunc(w)
	}
}

// SetStderr calls the custom SetStderrFunc if provided.
func (m *MockSession) SetStderr(w io.Writer) {
	if m.SetStderrFunc != nil {
		m.SetStderrFunc(w)
	}
}

// Close calls the custom CloseFunc if provided.
func (m *MockSession) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Ensure MockClient implements the Client interface
var _ Client = (*MockClient)(nil)

// Ensure MockClientConn implements the ClientConn interface
var _ ClientConn = (*MockClientConn)(nil)

// Ensure MockSession implements the Session interface
var _ Session = (*MockSession)(nil)
