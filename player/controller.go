package player

import (
	"io"
	"sync"
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/assert"
	"github.com/TimothyDexter/FiveM-StanceModifier/timing"
	"github.com/TimothyDexter/FiveM-StanceModifier/utils"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Controller owns the posture of a single character. All of its methods except Posture, IsProne,
// SetBlocking, Blocking and Handle must be called from the goroutine running the frame loop.
type Controller struct {
	log *logrus.Logger
	Dbg *Debugger

	opts Opts

	input      InputProvider
	clock      Clock
	pose       PoseExecutor
	env        Environment
	camera     Camera
	restraints Restraints

	prone ProneComponent

	posture  atomic.Uint32
	blocking BlockingPolicy

	ledger       *timing.Ledger
	suspensions  *suspensionQueue
	history      *utils.CircularQueue[Transition]
	holdConsumed bool

	hMutex sync.RWMutex
	h      Handler
}

// New creates a new Controller starting in the idle posture. A prone component must be set with
// SetProne before the first tick.
func New(log *logrus.Logger, opts Opts, providers Providers) *Controller {
	assert.IsTrue(providers.Input != nil, "controller requires an input provider")
	assert.IsTrue(providers.Pose != nil, "controller requires a pose executor")
	assert.IsTrue(providers.Environment != nil, "controller requires an environment")
	assert.IsTrue(providers.Camera != nil, "controller requires a camera")

	if log == nil {
		log = logrus.New()
		log.Out = io.Discard
	}
	if providers.Clock == nil {
		providers.Clock = wallClock{}
	}

	c := &Controller{
		log:  log,
		Dbg:  &Debugger{log: log},
		opts: opts,

		input:      providers.Input,
		clock:      providers.Clock,
		pose:       providers.Pose,
		env:        providers.Environment,
		camera:     providers.Camera,
		restraints: providers.Restraints,

		ledger:      timing.NewLedger(),
		suspensions: newSuspensionQueue(),
		history:     utils.NewCircularQueue[Transition](historySize),

		h: NopHandler{},
	}
	c.posture.Store(uint32(PostureIdle))
	return c
}

// Posture returns the current posture. It is safe to call from any goroutine.
func (c *Controller) Posture() Posture {
	return Posture(c.posture.Load())
}

// IsProne returns true if the current posture is prone. It is safe to call from any goroutine.
func (c *Controller) IsProne() bool {
	return c.Posture() == PostureProne
}

// Orientation returns the prone orientation. It is only meaningful while prone.
func (c *Controller) Orientation() Orientation {
	if c.prone == nil {
		return OrientationOnFront
	}
	return c.prone.Orientation()
}

// Log returns the logger of the controller.
func (c *Controller) Log() *logrus.Logger {
	return c.log
}

// Now returns the current time of the controller's clock.
func (c *Controller) Now() time.Time {
	return c.clock.Now()
}

// Input returns the input provider of the controller.
func (c *Controller) Input() InputProvider {
	return c.input
}

// Pose returns the pose executor of the controller.
func (c *Controller) Pose() PoseExecutor {
	return c.pose
}

// Environment returns the environment of the controller.
func (c *Controller) Environment() Environment {
	return c.env
}

// Camera returns the camera of the controller.
func (c *Controller) Camera() Camera {
	return c.camera
}

// Ledger returns the timing ledger of the controller.
func (c *Controller) Ledger() *timing.Ledger {
	return c.ledger
}

// ForceIdle sets the posture to idle without running the prone exit protocol. It is used when the
// character already left the posture on its own, for instance by falling.
func (c *Controller) ForceIdle(reason string) {
	c.Dbg.Notify(DebugModeTransitions, true, "forced idle from %s: %s", c.Posture(), reason)
	c.setPosture(PostureIdle)
}

func (c *Controller) setPosture(p Posture) {
	from := Posture(c.posture.Swap(uint32(p)))
	if from == p {
		return
	}
	c.Dbg.Notify(DebugModeTransitions, true, "posture %s -> %s", from, p)
	c.recordTransition(from, p)
	c.handler().HandlePostureChange(from, p)
}

// poseErr logs a failed pose executor call. The call is treated as a no-op for this tick.
func (c *Controller) poseErr(op string, err error) {
	if err != nil {
		c.log.Warnf("stance: %s failed: %v", op, err)
	}
}

// PoseErr logs a failed pose executor call made by a component.
func (c *Controller) PoseErr(op string, err error) {
	c.poseErr(op, err)
}
