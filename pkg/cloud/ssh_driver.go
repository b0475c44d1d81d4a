package cloud

import (
	"fmt"
	"strings"

	"github.com/stemforge/cli/pkg/di"
	"github.com/stemforge/cli/pkg/ssh"
)

// The SSHDriver publishes stemcell images to a remote hypervisor host. It
// streams the image over an SSH session, then runs the host's import command
// and treats its output as the image handle.

// =============================================================================
// Types
// =============================================================================

// SSHSettings holds the configuration for an ssh backend
type SSHSettings struct {
	Host           string `json:"host"`
	Port           string `json:"port,omitempty"`
	User           string `json:"user"`
	PrivateKeyPath string `json:"private_key_path"`
	RemoteDir      string `json:"remote_dir,omitempty"`
	ImportCommand  string `json:"import_command"`
}

// SSHDriver implements the Driver interface over an SSH connection
type SSHDriver struct {
	injector di.Injector
	settings SSHSettings
	client   ssh.Client
	shims    *Shims
}

// =============================================================================
// Constructor
// =============================================================================

// NewSSHDriver creates a new SSHDriver instance
func NewSSHDriver(injector di.Injector) *SSHDriver {
	return &SSHDriver{
		injector: injector,
		client:   ssh.NewSSHClient(),
		shims:    NewShims(),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize validates the driver settings and resolves an ssh client override if registered
func (d *SSHDriver) Initialize(injector di.Injector) error {
	if d.settings.Host == "" || d.settings.User == "" {
		return fmt.Errorf("ssh driver requires host and user settings")
	}
	if d.settings.PrivateKeyPath == "" {
		return fmt.Errorf("ssh driver requires a private_key_path setting")
	}
	if d.settings.ImportCommand == "" {
		return fmt.Errorf("ssh driver requires an import_command setting")
	}
	if d.settings.Port == "" {
		d.settings.Port = "22"
	}
	if d.settings.RemoteDir == "" {
		d.settings.RemoteDir = "/var/tmp"
	}

	if injector != nil {
		if client, ok := injector.Resolve("sshClient").(ssh.Client); ok {
			d.client = client
		}
	}

	return nil
}

// CreateImage uploads the image to the remote host and runs the configured
// import command, returning the command's trimmed output as the image handle.
func (d *SSHDriver) CreateImage(imagePath string, properties map[string]interface{}) (string, error) {
	conn, err := d.connect()
	if err != nil {
		return "", err
	}
	defer conn.Close()

	remotePath, err := d.uploadImage(conn, imagePath)
	if err != nil {
		return "", err
	}

	session, err := conn.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to open ssh session: %w", err)
	}
	defer session.Close()

	out, err := session.CombinedOutput(fmt.Sprintf("%s %s", d.settings.ImportCommand, remotePath))
	if err != nil {
		return "", fmt.Errorf("import command failed on %s: %w\n%s", d.settings.Host, err, out)
	}

	imageID := strings.TrimSpace(string(out))
	if imageID == "" {
		return "", fmt.Errorf("import command on %s did not report an image id", d.settings.Host)
	}

	return imageID, nil
}

// =============================================================================
// Private Methods
// =============================================================================

// connect dials the remote host using public key authentication
func (d *SSHDriver) connect() (ssh.ClientConn, error) {
	keyData, err := d.shims.ReadFile(d.settings.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	signer, err := d.shims.ParsePrivateKey(keyData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	config := &ssh.ClientConfig{
		User:            d.settings.User,
		Auth:            []ssh.AuthMethod{&ssh.PublicKeyAuthMethod{Signer: signer}},
		HostKeyCallback: &ssh.InsecureIgnoreHostKeyCallback{},
		HostName:        d.settings.Host,
		Port:            d.settings.Port,
	}

	conn, err := d.client.Dial("tcp", fmt.Sprintf("%s:%s", d.settings.Host, d.settings.Port), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", d.settings.Host, err)
	}

	return conn, nil
}

// uploadImage streams the image file into the remote directory over a session
func (d *SSHDriver) uploadImage(conn ssh.ClientConn, imagePath string) (string, error) {
	file, err := d.shims.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 6)
	if _, err := d.shims.RandRead(buf); err != nil {
		return "", fmt.Errorf("failed to generate remote file name: %w", err)
	}
	remotePath := fmt.Sprintf("%s/stemforge-image-%x", d.settings.RemoteDir, buf)

	session, err := conn.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to open ssh session: %w", err)
	}
	defer session.Close()

	session.SetStdin(file)
	if err := session.Run(fmt.Sprintf("cat > %s", remotePath)); err != nil {
		return "", fmt.Errorf("failed to upload image to %s: %w", d.settings.Host, err)
	}

	return remotePath, nil
}

// Ensure SSHDriver implements Driver interface
var _ Driver = (*SSHDriver)(nil)
