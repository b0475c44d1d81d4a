package cloud

import (
	"fmt"
	"strings"
	"testing"
)

// The ExecDriver tests cover the platform CLI invocation, the JSON output
// contract, and argument construction, with the shell mocked.

// =============================================================================
// Test Setup
// =============================================================================

func setupExecDriver(t *testing.T) (*ExecDriver, *execCall) {
	t.Helper()
	injector, mockShell := setupInjector(t)
	call := &execCall{}
	mockShell.ExecSilentFunc = func(command string, args ...string) (string, error) {
		call.command = command
		call.args = args
		if call.out == "" && call.err == nil {
			return `{"image_id": "ami-12345"}`, nil
		}
		return call.out, call.err
	}
	driver := NewExecDriver(injector)
	driver.settings = ExecSettings{Command: "aws-stemcell-import", Args: []string{"--region", "us-east-1"}}
	if err := driver.Initialize(injector); err != nil {
		t.Fatalf("Failed to initialize driver: %v", err)
	}
	return driver, call
}

type execCall struct {
	command string
	args    []string
	out     string
	err     error
}

// =============================================================================
// Test Public Methods
// =============================================================================

func TestExecDriver_Initialize(t *testing.T) {
	t.Run("RequiresCommand", func(t *testing.T) {
		// Given an exec driver without a command setting
		injector, _ := setupInjector(t)
		driver := NewExecDriver(injector)

		// When initializing
		err := driver.Initialize(injector)

		// Then an error should be returned
		if err == nil {
			t.Error("Expected error for missing command setting")
		}
	})
}

func TestExecDriver_CreateImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Given an exec driver whose tool reports an image id
		driver, call := setupExecDriver(t)

		// When creating the image
		imageID, err := driver.CreateImage("/tmp/image", map[string]interface{}{"region": "us-east-1"})

		// Then the image id from the tool's JSON output should be returned
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if imageID != "ami-12345" {
			t.Errorf("Expected ami-12345, got %s", imageID)
		}

		// And the tool should receive the configured args plus image and properties
		if call.command != "aws-stemcell-import" {
			t.Errorf("Expected configured command, got %s", call.command)
		}
		joined := strings.Join(call.args, " ")
		if !strings.Contains(joined, "--region us-east-1") {
			t.Errorf("Expected configured args, got %s", joined)
		}
		if !strings.Contains(joined, "--image /tmp/image") {
			t.Errorf("Expected image path arg, got %s", joined)
		}
		if !strings.Contains(joined, `"region":"us-east-1"`) {
			t.Errorf("Expected properties JSON arg, got %s", joined)
		}
	})

	t.Run("CommandFails", func(t *testing.T) {
		// Given an exec driver whose tool fails
		driver, call := setupExecDriver(t)
		call.err = fmt.Errorf("command execution failed")

		// When creating the image
		_, err := driver.CreateImage("/tmp/image", nil)

		// Then the failure should be returned
		if err == nil {
			t.Error("Expected error when tool fails")
		}
	})

	t.Run("MalformedOutput", func(t *testing.T) {
		// Given an exec driver whose tool prints non-JSON output
		driver, call := setupExecDriver(t)
		call.out = "something went sideways"

		// When creating the image
		_, err := driver.CreateImage("/tmp/image", nil)

		// Then a parse error should be returned
		if err == nil {
			t.Error("Expected error for malformed output")
		}
	})

	t.Run("MissingImageID", func(t *testing.T) {
		// Given an exec driver whose tool reports no image id
		driver, call := setupExecDriver(t)
		call.out = `{"status": "ok"}`

		// When creating the image
		_, err := driver.CreateImage("/tmp/image", nil)

		// Then an error should be returned
		if err == nil {
			t.Error("Expected error when no image id is reported")
		}
	})
}
