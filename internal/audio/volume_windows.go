package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-ole/go-ole"
	"github.com/moutend/go-wca/pkg/wca"
)

// sFalse is returned by CoInitializeEx when COM is already initialized on
// the calling thread.
const sFalse = 0x00000001

type wcaEndpoint struct {
	mu       sync.Mutex
	volume   *wca.IAudioEndpointVolume
	minDB    float32
	maxDB    float32
	disposed bool
}

// Open activates IAudioEndpointVolume on the default render device. Levels
// are in decibels as reported by the device.
func Open() (Endpoint, error) {
	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			return nil, fmt.Errorf("failed to initialize ole: %w", err)
		}
	}

	volume, err := activateEndpointVolume()
	if err != nil {
		ole.CoUninitialize()
		return nil, err
	}

	var minDB, maxDB, stepDB float32
	if err := volume.GetVolumeRange(&minDB, &maxDB, &stepDB); err != nil {
		volume.Release()
		ole.CoUninitialize()
		return nil, fmt.Errorf("cannot get volume range: %w", err)
	}

	return &wcaEndpoint{
		volume: volume,
		minDB:  minDB,
		maxDB:  maxDB,
	}, nil
}

func activateEndpointVolume() (*wca.IAudioEndpointVolume, error) {
	var de *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &de); err != nil {
		return nil, fmt.Errorf("cannot create IMMDeviceEnumerator instance: %w", err)
	}
	defer de.Release()

	var device *wca.IMMDevice
	if err := de.GetDefaultAudioEndpoint(wca.ERender, wca.EConsole, &device); err != nil {
		return nil, fmt.Errorf("cannot get default render device: %w", err)
	}
	defer device.Release()

	var volume *wca.IAudioEndpointVolume
	if err := device.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &volume); err != nil {
		return nil, fmt.Errorf("cannot activate IAudioEndpointVolume: %w", err)
	}

	return volume, nil
}

func (e *wcaEndpoint) VolumeRange() (float64, float64, error) {
	return float64(e.minDB), float64(e.maxDB), nil
}

func (e *wcaEndpoint) SetVolume(level float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed {
		return errors.New("endpoint closed")
	}

	db := float32(min(max(level, float64(e.minDB)), float64(e.maxDB)))
	if err := e.volume.SetMasterVolumeLevel(db, nil); err != nil {
		return fmt.Errorf("cannot set master volume to %.2f dB: %w", db, err)
	}
	return nil
}

func (e *wcaEndpoint) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed {
		return nil
	}

	e.volume.Release()
	ole.CoUninitialize()
	e.disposed = true
	return nil
}
