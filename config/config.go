package config

import (
	"os"
	"sync"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/priyxstudio/entries/upath"
)

// DefaultLocation is set dynamically based on the platform
var DefaultLocation = GetDefaultConfigLocation()

const (
	// OutputPlain prints one entry per line.
	OutputPlain = "plain"
	// OutputJSON prints one JSON document per listed directory.
	OutputJSON = "json"
)

var (
	mu            sync.RWMutex
	_config       *Configuration
	_debugViaFlag bool
)

// Locker specific to writing the configuration to the disk, this happens
// in areas that might already be locked, so we don't want to crash the process.
var _writeLock sync.Mutex

// FilesystemConfiguration controls how native filenames are interpreted.
type FilesystemConfiguration struct {
	// FilenameEncoding is the encoding filenames are stored in on Unix
	// systems. Any WHATWG encoding label is accepted. Ignored on Windows,
	// where filenames are always UTF-16.
	FilenameEncoding string `default:"utf-8" json:"filename_encoding" yaml:"filename_encoding"`
}

// OutputConfiguration controls how listings are printed.
type OutputConfiguration struct {
	// Format is either "plain" or "json".
	Format string `default:"plain" json:"format" yaml:"format"`

	// Color enables colored log output when writing to a terminal.
	Color bool `default:"true" json:"color" yaml:"color"`
}

type Configuration struct {
	// The location from which this configuration instance was instantiated.
	path string

	// Determines if the program should be running in debug mode. This value
	// is ignored if the debug flag is passed through the command line arguments.
	Debug bool `json:"debug" yaml:"debug"`

	Filesystem FilesystemConfiguration `json:"filesystem" yaml:"filesystem"`
	Output     OutputConfiguration     `json:"output" yaml:"output"`
}

// NewAtPath creates a new struct and set the path where it should be stored.
// This function does not modify the currently stored global configuration.
func NewAtPath(path string) (*Configuration, error) {
	var c Configuration
	// Configures the default values for many of the configuration options present
	// in the structs. Values set in the configuration file take priority over the
	// default values.
	if err := defaults.Set(&c); err != nil {
		return nil, err
	}
	// Track the location where we created this configuration.
	c.path = path
	return &c, nil
}

// Validate checks the values that can't be expressed through struct tags.
func (c *Configuration) Validate() error {
	switch c.Output.Format {
	case OutputPlain, OutputJSON:
	default:
		return errors.WithDetails(errors.New("config: unknown output format"), "format", c.Output.Format)
	}
	return nil
}

// Apply pushes the settings that live outside this package, such as the
// filename encoding, to their owners.
func (c *Configuration) Apply() error {
	if err := upath.SetFilenameEncoding(c.Filesystem.FilenameEncoding); err != nil {
		return errors.Wrap(err, "config: failed to apply filename encoding")
	}
	return nil
}

// Set the global configuration instance. This is a blocking operation such that
// anything trying to set a different configuration value, or read the configuration
// will be paused until it is complete.
func Set(c *Configuration) {
	mu.Lock()
	defer mu.Unlock()
	_config = c
}

// SetDebugViaFlag tracks if the application is running in debug mode because of
// a command line flag argument. If so we do not want to store that configuration
// change to the disk.
func SetDebugViaFlag(d bool) {
	mu.Lock()
	defer mu.Unlock()
	_config.Debug = d
	_debugViaFlag = d
}

// Get returns a copy of the global configuration.
func Get() *Configuration {
	mu.RLock()
	// Create a copy of the struct so that all modifications made beyond this
	// point are immutable.
	//goland:noinspection GoVetCopyLock
	c := *_config
	mu.RUnlock()
	return &c
}

// Update performs an in-situ update of the global configuration object using
// a thread-safe mutex lock. This is the correct way to make modifications to
// the global configuration.
func Update(callback func(c *Configuration)) {
	mu.Lock()
	defer mu.Unlock()
	callback(_config)
}

// Path returns the file path where this configuration is stored.
func (c *Configuration) Path() string {
	return c.path
}

// WriteToDisk writes the configuration to the disk. This is a thread safe operation
// and will only allow one write at a time. Additional calls while writing are
// queued up.
func WriteToDisk(c *Configuration) error {
	_writeLock.Lock()
	defer _writeLock.Unlock()

	//goland:noinspection GoVetCopyLock
	ccopy := *c
	// If debugging is set with the flag, don't save that to the configuration file,
	// otherwise you'll always end up in debug mode.
	if _debugViaFlag {
		ccopy.Debug = false
	}
	if c.path == "" {
		return errors.New("cannot write configuration, no path defined in struct")
	}
	b, err := yaml.Marshal(&ccopy)
	if err != nil {
		return err
	}
	return WriteRawConfig(c.path, b)
}

// FromFile loads the configuration at path into the global state. A missing
// file is not an error: the defaults are used instead.
func FromFile(path string) error {
	c, err := NewAtPath(path)
	if err != nil {
		return err
	}

	b, err := ReadRawConfig(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, c); err != nil {
			return errors.WrapWithDetails(err, "config: failed to parse config file", "path", path)
		}
	case errors.Is(err, os.ErrNotExist):
		log.WithField("path", path).Debug("no configuration file found, using defaults")
	default:
		return err
	}

	if err := c.Validate(); err != nil {
		return err
	}

	// Store this configuration in the global state.
	Set(c)
	return nil
}
