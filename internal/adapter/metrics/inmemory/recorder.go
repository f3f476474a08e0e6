package inmemory

import "sync"

type Snapshot struct {
	CommandTotal   uint64            `json:"command_total"`
	CommandFailure uint64            `json:"command_failure"`
	Completions    uint64            `json:"completions"`
	ByVerb         map[string]uint64 `json:"by_verb"`
}

type Recorder struct {
	mu          sync.Mutex
	commands    uint64
	failures    uint64
	completions uint64
	byVerb      map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byVerb: map[string]uint64{},
	}
}

func (r *Recorder) RecordCommand(verb string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands++
	r.byVerb[verb]++
}

func (r *Recorder) RecordCompletion() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		CommandTotal:   r.commands,
		CommandFailure: r.failures,
		Completions:    r.completions,
		ByVerb:         make(map[string]uint64, len(r.byVerb)),
	}
	for k, v := range r.byVerb {
		out.ByVerb[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
