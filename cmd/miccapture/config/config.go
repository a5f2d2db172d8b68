package config

import (
	"fmt"
	"os"
	"time"

	"MicCapture/internal/monitor"
	"MicCapture/pkg/capture"
	"MicCapture/pkg/dma"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Capture struct {
		BufferLength int `yaml:"buffer_length"`
	} `yaml:"capture"`

	Stream struct {
		Backend    string  `yaml:"backend"` // synthetic, asio or malgo
		DeviceName string  `yaml:"device_name"`
		SampleRate float64 `yaml:"sample_rate"`
		InChannel  int     `yaml:"in_channel"`
		Channels   int     `yaml:"channels"`
		BlockSize  int     `yaml:"block_size"`

		Waveform struct {
			Kind      string  `yaml:"kind"` // sine, noise, ramp or silence
			Frequency float64 `yaml:"frequency"`
			Amplitude float64 `yaml:"amplitude"`
		} `yaml:"waveform"`
	} `yaml:"stream"`

	Monitor struct {
		PollInterval time.Duration `yaml:"poll_interval"`
	} `yaml:"monitor"`

	Output struct {
		Path string `yaml:"path"`
	} `yaml:"output"`
}

// Default is the configuration used for every key a config file leaves out.
func Default() *Config {
	var c Config
	c.Capture.BufferLength = capture.BufferLength
	c.Stream.Backend = "synthetic"
	c.Stream.SampleRate = 48000
	c.Stream.Channels = 1
	c.Stream.BlockSize = dma.BlockSize
	c.Stream.Waveform.Kind = "sine"
	c.Stream.Waveform.Frequency = 1000
	c.Stream.Waveform.Amplitude = 0.5
	c.Monitor.PollInterval = 100 * time.Millisecond
	return &c
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	// keys present in the file override the defaults, including explicit zeros
	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

func (c *Config) validate() error {
	if a := c.Stream.Waveform.Amplitude; !(a >= 0 && a <= 1) {
		return fmt.Errorf("waveform amplitude %v outside [0, 1]", a)
	}
	if c.Monitor.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", c.Monitor.PollInterval)
	}
	if c.Stream.Channels <= 0 {
		return fmt.Errorf("channels must be positive, got %d", c.Stream.Channels)
	}
	return nil
}

func CreateSession(config *Config) (*capture.Session, error) {
	return capture.New(config.Capture.BufferLength)
}

func CreateWaveform(config *Config) (dma.Waveform, error) {
	w := config.Stream.Waveform
	switch w.Kind {
	case "sine":
		return dma.Sine(w.Frequency, config.Stream.SampleRate, w.Amplitude), nil
	case "noise":
		return dma.Noise(w.Amplitude), nil
	case "ramp":
		return dma.Ramp(0), nil
	case "silence":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown waveform %q", w.Kind)
}

func CreateStream(config *Config) (dma.Stream, error) {
	switch config.Stream.Backend {
	case "synthetic":
		waveform, err := CreateWaveform(config)
		if err != nil {
			return nil, err
		}
		return &dma.Synthetic{
			SampleRate: config.Stream.SampleRate,
			BlockSize:  config.Stream.BlockSize,
			Waveform:   waveform,
		}, nil
	case "asio":
		if !dma.HasASIO {
			return nil, dma.ErrNoASIO
		}
		return &dma.ASIO{
			DeviceName: config.Stream.DeviceName,
			SampleRate: config.Stream.SampleRate,
			InChannel:  config.Stream.InChannel,
		}, nil
	case "malgo":
		return &dma.Malgo{
			SampleRate: uint32(config.Stream.SampleRate),
			Channels:   uint32(config.Stream.Channels),
			InChannel:  config.Stream.InChannel,
		}, nil
	}
	return nil, fmt.Errorf("unknown stream backend %q", config.Stream.Backend)
}

func CreateRecorder(session *capture.Session) *monitor.Recorder {
	return &monitor.Recorder{Source: session}
}
