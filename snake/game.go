// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package snake

import (
	"math/rand/v2"
	"time"

	"github.com/GermanBionicSystems/lcd132/framebuf"
	"github.com/GermanBionicSystems/lcd132/keypad"
)

// Grid geometry and pace.
const (
	// Cell is the size of a grid cell in pixels.
	Cell = 4
	// HUD is the height of the score line above the play field.
	HUD = 8
	// Cols and Rows are the grid dimensions.
	Cols = framebuf.LCDWidth / Cell
	Rows = (framebuf.LCDHeight - HUD) / Cell
	// Capacity is the longest the snake can get.
	Capacity = Cols * Rows

	BaseTick = 180 * time.Millisecond
	TickStep = 5 * time.Millisecond
	MinTick  = 80 * time.Millisecond

	// FoodAttempts is the number of random cells tried before food falls
	// back to the first free cell.
	FoodAttempts = 100
)

// Point is a cell of the grid.
type Point struct {
	X, Y int
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// Directions.
var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{-d.DX, -d.DY}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// State is the phase of the game.
type State uint8

// Possible states.
const (
	Running State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	default:
		return "State(?)"
	}
}

// Opts defines the options for a game.
type Opts struct {
	// Rand places the food. A randomly seeded source is used when nil.
	Rand *rand.Rand
}

// Game is the state of one snake game.
//
// It is not safe for concurrent use.
type Game struct {
	body [Capacity]Point
	n    int
	food Point

	// dir is the direction used by the last step, intent the one requested
	// for the next. Reversals are checked against dir.
	dir    Direction
	intent Direction

	state    State
	score    int
	interval time.Duration
	// okHeld is the OK key level seen by the previous HandleKey.
	okHeld bool

	rng *rand.Rand
}

// New returns a game ready to play.
func New(opts *Opts) *Game {
	g := &Game{}
	if opts != nil {
		g.rng = opts.Rand
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g.Reset()
	return g
}

// Reset starts a new game: a three cell snake in the middle of the grid
// heading right, a score of zero and the base pace.
func (g *Game) Reset() {
	cx, cy := Cols/2, Rows/2
	g.n = 3
	g.body[0] = Point{cx + 1, cy}
	g.body[1] = Point{cx, cy}
	g.body[2] = Point{cx - 1, cy}
	g.dir = DirRight
	g.intent = DirRight
	g.state = Running
	g.score = 0
	g.interval = BaseTick
	g.okHeld = false
	g.PlaceFood()
}

// HandleKey applies one debounced key reading.
//
// OK toggles pause, or restarts a finished game, once per press. Arrows
// change the direction of the next step unless they point back into the
// neck. Arrows are ignored unless the game is running.
func (g *Game) HandleKey(k keypad.Key) {
	pressed := k == keypad.OK && !g.okHeld
	g.okHeld = k == keypad.OK
	switch g.state {
	case GameOver:
		if pressed {
			g.Reset()
			g.okHeld = true
		}
		return
	case Running:
		if pressed {
			g.state = Paused
			return
		}
	case Paused:
		if pressed {
			g.state = Running
		}
		return
	}
	var d Direction
	switch k {
	case keypad.Up:
		d = DirUp
	case keypad.Down:
		d = DirDown
	case keypad.Left:
		d = DirLeft
	case keypad.Right:
		d = DirRight
	default:
		return
	}
	if d != g.dir.Reverse() {
		g.intent = d
	}
}

// Step advances the snake by one cell. It does nothing unless the game is
// running.
func (g *Game) Step() {
	if g.state != Running {
		return
	}
	if g.intent != g.dir.Reverse() {
		g.dir = g.intent
	}
	head := g.body[0]
	next := Point{wrap(head.X+g.dir.DX, Cols), wrap(head.Y+g.dir.DY, Rows)}
	if g.Occupies(next) {
		g.state = GameOver
		return
	}
	tail := g.body[g.n-1]
	copy(g.body[1:g.n], g.body[:g.n-1])
	g.body[0] = next
	if next != g.food {
		return
	}
	if g.n < Capacity {
		g.body[g.n] = tail
		g.n++
	}
	g.score++
	if g.interval -= TickStep; g.interval < MinTick {
		g.interval = MinTick
	}
	g.PlaceFood()
}

// PlaceFood moves the food to a free cell.
//
// A bounded number of random cells are tried first, then the grid is
// scanned row by row. The food stays where it is when no cell is free.
func (g *Game) PlaceFood() {
	for i := 0; i < FoodAttempts; i++ {
		p := Point{g.rng.IntN(Cols), g.rng.IntN(Rows)}
		if !g.Occupies(p) {
			g.food = p
			return
		}
	}
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if p := (Point{x, y}); !g.Occupies(p) {
				g.food = p
				return
			}
		}
	}
}

// Occupies reports whether the snake covers p.
func (g *Game) Occupies(p Point) bool {
	for _, s := range g.body[:g.n] {
		if s == p {
			return true
		}
	}
	return false
}

// State returns the phase of the game.
func (g *Game) State() State {
	return g.state
}

// Score returns the number of food cells eaten.
func (g *Game) Score() int {
	return g.score
}

// Interval returns the time between two steps at the current pace.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// Len returns the length of the snake.
func (g *Game) Len() int {
	return g.n
}

// Body returns a copy of the snake cells, head first.
func (g *Game) Body() []Point {
	return append([]Point(nil), g.body[:g.n]...)
}

// Head returns the cell of the head.
func (g *Game) Head() Point {
	return g.body[0]
}

// Food returns the cell holding the food.
func (g *Game) Food() Point {
	return g.food
}

// Direction returns the direction used by the last step.
func (g *Game) Direction() Direction {
	return g.dir
}

// Intent returns the direction requested for the next step.
func (g *Game) Intent() Direction {
	return g.intent
}

func wrap(v, n int) int {
	if v < 0 {
		return n - 1
	}
	if v >= n {
		return 0
	}
	return v
}
