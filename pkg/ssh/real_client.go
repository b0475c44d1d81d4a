package ssh

import (
	"io"

	gossh "golang.org/x/crypto/ssh"
)

// SSHClient is the real implementation of the Client interface
type SSHClient struct{}

// NewSSHClient creates a new SSHClient instance
func NewSSHClient() *SSHClient {
	return &SSHClient{}
}

// Dial connects to the SSH server and returns a client connection
func (c *SSHClient) Dial(network, addr string, config *ClientConfig) (ClientConn, error) {
	var authMethods []gossh.AuthMethod
	for _, am := range config.Auth {
		authMethods = append(authMethods, am.Method())
	}

	gosshConfig := &gossh.ClientConfig{
		User:            config.User,
		Auth:            authMethods,
		HostKeyCallback: config.HostKeyCallback.Callback(),
	}

	client, err := gossh.Dial(network, addr, gosshConfig)
	if err != nil {
		return nil, err
	}
	return &RealClientConn{client: client}, nil
}

// RealClientConn wraps *gossh.Client and implements the ClientConn interface
type RealClientConn struct {
	client *gossh.Client
}

// Close closes the client connection
func (c *RealClientConn) Close() error {
	return c.client.Close()
}

// NewSession creates a new SSH session
func (c *RealClientConn) NewSession() (Session, error) {
	session, err := c.client.NewSession()
	if err != nil {
		return nil, err
	}
	return &RealSession{session: session}, nil
}

// RealSession wraps *gossh.Session and implements the Session interface
type RealSession struct {
	session *gossh.Session
}

func (s *RealSession) Run(cmd string) error {
	return s.session.Run(cmd)
}

func (s *RealSession) CombinedOutput(cmd string) ([]byte, error) {
	return s.session.CombinedOutput(cmd)
}

func (s *RealSession) SetStdin(r io.Reader) {
	s.session.Stdin = r
}

func (s *RealSession) SetStdout(w io.Writer) {
	s.session.Stdout = w
}

func (s *RealSession) SetStderr(w io.Writer) {
	s.session.Stderr = w
}

func (s *RealSession) Close() error {
	return s.session.Close()
}

// PublicKeyAuthMethod adapts a parsed private key signer to the AuthMethod interface
type PublicKeyAuthMethod struct {
	Signer gossh.Signer
}

// Method returns the gossh public key auth method
func (a *PublicKeyAuthMethod) Method() gossh.AuthMethod {
	return gossh.PublicKeys(a.Signer)
}

// InsecureIgnoreHostKeyCallback accepts any host key
type InsecureIgnoreHostKeyCallback struct{}

// Callback returns the gossh insecure host key callback
func (c *InsecureIgnoreHostKeyCallback) Callback() gossh.HostKeyCallback {
	return gossh.InsecureIgnoreHostKey()
}

// Ensure SSHClient implements the Client interface
var _ Client = (*SSHClient)(nil)

// Ensure RealClientConn implements the ClientConn interface
var _ ClientConn = (*RealClientConn)(nil)

// Ensure RealSession implements the Session interface
var _ Session = (*RealSession)(nil)
