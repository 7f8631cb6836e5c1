package player

import "errors"

// MockBackend is a test double for Backend. Construction completes only
// when the test calls Ready.
type MockBackend struct {
	Handle      *MockHandle
	createErr   error
	createCalls []string
	callbacks   Callbacks
	container   string
	options     Options
}

// NewMockBackend creates a backend whose handle is a fresh MockHandle.
func NewMockBackend() *MockBackend {
	return &MockBackend{Handle: NewMockHandle()}
}

func (b *MockBackend) Create(container, videoID string, opts Options, cb Callbacks) error {
	b.createCalls = append(b.createCalls, videoID)
	if b.createErr != nil {
		return b.createErr
	}
	b.container = container
	b.options = opts
	b.callbacks = cb
	b.Handle.data.VideoID = videoID
	return nil
}

// Test helpers

func (b *MockBackend) SetCreateError(err error) { b.createErr = err }

func (b *MockBackend) CreateCalls() []string { return b.createCalls }

func (b *MockBackend) Container() string { return b.container }

func (b *MockBackend) Options() Options { return b.options }

// Ready completes construction.
func (b *MockBackend) Ready() {
	if b.callbacks.OnReady == nil {
		panic(errors.New("mock backend: Ready before Create"))
	}
	b.callbacks.OnReady(b.Handle)
}

// Report sets the native state and fires the state-change callback.
func (b *MockBackend) Report(s NativeState) {
	b.Handle.state = s
	b.callbacks.OnStateChange()
}

// Fail fires the error callback.
func (b *MockBackend) Fail(code int) {
	b.callbacks.OnError(code)
}

// MockHandle is a test double for Handle.
type MockHandle struct {
	state     NativeState
	data      VideoData
	volume    int
	plays     int
	stops     int
	seeks     []float64
	loadCalls []string
}

// NewMockHandle creates a handle reporting NativeUnstarted.
func NewMockHandle() *MockHandle {
	return &MockHandle{state: NativeUnstarted, volume: -1}
}

func (h *MockHandle) PlayVideo() { h.plays++ }

func (h *MockHandle) StopVideo() { h.stops++ }

func (h *MockHandle) SeekTo(seconds float64, _ bool) {
	h.seeks = append(h.seeks, seconds)
}

func (h *MockHandle) SetVolume(level int) { h.volume = level }

func (h *MockHandle) LoadVideoByID(id string) {
	h.loadCalls = append(h.loadCalls, id)
	h.data = VideoData{VideoID: id}
}

func (h *MockHandle) PlayerState() NativeState { return h.state }

func (h *MockHandle) VideoURL() string {
	if h.data.VideoID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + h.data.VideoID
}

func (h *MockHandle) VideoData() VideoData { return h.data }

// Test helpers

func (h *MockHandle) SetState(s NativeState) { h.state = s }

func (h *MockHandle) SetVideoData(d VideoData) { h.data = d }

func (h *MockHandle) Plays() int { return h.plays }

func (h *MockHandle) Stops() int { return h.stops }

func (h *MockHandle) Seeks() []float64 { return h.seeks }

func (h *MockHandle) Volume() int { return h.volume }

func (h *MockHandle) LoadCalls() []string { return h.loadCalls }

// Verify mocks implement the interfaces at compile time.
var (
	_ Backend = (*MockBackend)(nil)
	_ Handle  = (*MockHandle)(nil)
)
