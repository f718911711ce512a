package sim

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/cellspace/core"
	"github.com/hupe1980/cellspace/logging"
)

// Steppable is an agent the scheduler can activate: identity plus one unit of
// per-tick behavior.
type Steppable interface {
	core.Agent
	Step()
}

// Options configures a Model.
type Options struct {
	// Seed initializes the model's random source; ignored when Rand is set.
	// A zero seed falls back to the current time.
	Seed uint64

	// Rand overrides the model's random source entirely.
	Rand *rand.Rand

	// Logger receives step diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Model is the shared state of a simulation run: one random source routed to
// spaces and agents, a step counter and the activation schedule.
type Model struct {
	rng      *rand.Rand
	logger   logging.Logger
	schedule *RandomActivation
	steps    int
}

// NewModel creates a model. Pass its Rand() to every space the model owns so
// a single seed reproduces the full run.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Rand == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>32|1))
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	m := &Model{rng: opts.Rand, logger: opts.Logger}
	m.schedule = &RandomActivation{rng: opts.Rand, positions: map[string]int{}}
	return m
}

// Rand returns the model's random source.
func (m *Model) Rand() *rand.Rand { return m.rng }

// Schedule returns the model's activation schedule.
func (m *Model) Schedule() *RandomActivation { return m.schedule }

// Steps returns how many ticks have run.
func (m *Model) Steps() int { return m.steps }

// Step advances the simulation one tick: every scheduled agent is activated
// once, in shuffled order.
func (m *Model) Step() {
	m.schedule.Step()
	m.steps++
	m.logger.Debug("model stepped", "step", m.steps, "agents", m.schedule.Len())
}

// NewAgentID returns a fresh unique agent identity.
func NewAgentID() string { return uuid.NewString() }

// RandomActivation steps agents one at a time in a random order that is
// reshuffled every tick. Agents added or removed during a tick take effect
// from the next tick.
type RandomActivation struct {
	rng       *rand.Rand
	agents    []Steppable
	positions map[string]int
}

// Add registers an agent for activation. Re-adding a registered agent is a
// no-op.
func (s *RandomActivation) Add(agent Steppable) {
	if _, ok := s.positions[agent.AgentID()]; ok {
		return
	}
	s.positions[agent.AgentID()] = len(s.agents)
	s.agents = append(s.agents, agent)
}

// Remove deregisters an agent. Removing an unknown agent is a no-op.
func (s *RandomActivation) Remove(agent Steppable) {
	pos, ok := s.positions[agent.AgentID()]
	if !ok {
		return
	}
	last := len(s.agents) - 1
	moved := s.agents[last]
	s.agents[pos] = moved
	s.positions[moved.AgentID()] = pos
	s.agents = s.agents[:last]
	delete(s.positions, agent.AgentID())
}

// Len returns the number of scheduled agents.
func (s *RandomActivation) Len() int { return len(s.agents) }

// Agents returns the scheduled agents in registration order (modulo swap
// removal). The returned slice is a copy.
func (s *RandomActivation) Agents() []Steppable {
	out := make([]Steppable, len(s.agents))
	copy(out, s.agents)
	return out
}

// Step activates every scheduled agent once in a freshly shuffled order. The
// activation pass runs over a snapshot, so agents may add or remove agents
// (births, deaths) while stepping.
func (s *RandomActivation) Step() {
	order := make([]Steppable, len(s.agents))
	copy(order, s.agents)
	s.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, agent := range order {
		// skip agents removed earlier in this same tick
		if _, alive := s.positions[agent.AgentID()]; !alive {
			continue
		}
		agent.Step()
	}
}
