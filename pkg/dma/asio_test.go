package dma

import (
	"errors"
	"reflect"
	"testing"
)

type fakeASIO struct {
	fail     string // name of the call that fails
	calls    []string
	callback func(in, out [][]int32)
}

var errDriver = errors.New("driver failure")

func (f *fakeASIO) call(name string) error {
	f.calls = append(f.calls, name)
	if f.fail == name {
		return errDriver
	}
	return nil
}

func (f *fakeASIO) Load(string) error           { return f.call("load") }
func (f *fakeASIO) SetSampleRate(float64) error { return f.call("rate") }
func (f *fakeASIO) Open() error                 { return f.call("open") }
func (f *fakeASIO) Stop()                       { f.call("stop") }
func (f *fakeASIO) Close()                      { f.call("close") }
func (f *fakeASIO) Unload()                     { f.call("unload") }

func (f *fakeASIO) Start(callback func(in, out [][]int32)) error {
	if err := f.call("start"); err != nil {
		return err
	}
	f.callback = callback
	return nil
}

func TestASIOStartFailures(t *testing.T) {
	cases := map[string][]string{
		"load":  {"load"},
		"rate":  {"load", "rate", "unload"},
		"open":  {"load", "rate", "open", "unload"},
		"start": {"load", "rate", "open", "start", "close", "unload"},
	}
	for fail, want := range cases {
		driver := &fakeASIO{fail: fail}
		a := &ASIO{DeviceName: "test", SampleRate: 48000, driver: driver}

		if err := a.Start(alloci32(4), Callbacks{}); !errors.Is(err, errDriver) {
			t.Errorf("%s: expected the driver error, got %v", fail, err)
		}
		if !reflect.DeepEqual(driver.calls, want) {
			t.Errorf("%s: expected calls %v, got %v", fail, want, driver.calls)
		}

		// a failed start can be retried
		driver.fail = ""
		if err := a.Start(alloci32(4), Callbacks{}); err != nil {
			t.Errorf("%s: retry failed: %v", fail, err)
		}
	}
}

func TestASIO(t *testing.T) {
	driver := &fakeASIO{}
	complete := 0
	a := &ASIO{InChannel: 1, driver: driver}
	buffer := alloci32(4)

	if err := a.Start(buffer, Callbacks{TransferComplete: func() { complete++ }}); err != nil {
		t.Fatal(err)
	}
	if err := a.Start(buffer, Callbacks{}); !errors.Is(err, ErrStarted) {
		t.Errorf("expected ErrStarted, got %v", err)
	}

	out := [][]int32{{7, 7}}
	driver.callback([][]int32{{9, 9}, {1, 2}}, out)
	driver.callback([][]int32{{9, 9}, {3, 4}}, out)

	if want := []int32{1, 2, 3, 4}; !reflect.DeepEqual(buffer, want) {
		t.Errorf("expected buffer %v, got %v", want, buffer)
	}
	if complete != 1 {
		t.Errorf("expected 1 transfer complete event, got %d", complete)
	}
	if want := []int32{0, 0}; !reflect.DeepEqual(out[0], want) {
		t.Errorf("outputs must be silenced, got %v", out[0])
	}

	a.Stop()
	a.Stop()
	if n := len(driver.calls); !reflect.DeepEqual(driver.calls[n-3:], []string{"stop", "close", "unload"}) {
		t.Errorf("unexpected teardown %v", driver.calls)
	}
}

func TestASIOPlatform(t *testing.T) {
	a := &ASIO{}
	if HasASIO {
		t.Skip("asio driver present")
	}
	if err := a.Start(alloci32(4), Callbacks{}); !errors.Is(err, ErrNoASIO) {
		t.Errorf("expected ErrNoASIO, got %v", err)
	}
}
