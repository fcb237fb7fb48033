package notify

import "sync"

// 事件类型
const (
	KindSuccess  = "success"
	KindError    = "error"
	KindNavigate = "navigate"
)

// Event 记录的提示或导航事件
type Event struct {
	Kind    string
	Message string
}

// Recorder 记录全部事件，供测试断言
type Recorder struct {
	mu     sync.Mutex
	events []Event
	// OnEvent 事件回调（可选，在锁外调用）
	OnEvent func(Event)
}

// Success 记录成功提示
func (r *Recorder) Success(message string) {
	r.record(Event{Kind: KindSuccess, Message: message})
}

// Error 记录失败提示
func (r *Recorder) Error(message string) {
	r.record(Event{Kind: KindError, Message: message})
}

// Navigate 记录导航
func (r *Recorder) Navigate(view string) {
	r.record(Event{Kind: KindNavigate, Message: view})
}

// Events 返回事件副本
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Last 返回指定类型的最后一个事件
func (r *Recorder) Last(kind string) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return Event{}, false
}

func (r *Recorder) record(event Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	hook := r.OnEvent
	r.mu.Unlock()
	if hook != nil {
		hook(event)
	}
}
