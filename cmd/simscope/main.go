// Command simscope is a demo track viewer: simulated platforms orbit the
// screen center while sharing icon sprites through the icon factory.
// Preference churn and track freezing exercise cache eviction, rebuild,
// and staleness alerts
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/simscope/alert"
	"github.com/lixenwraith/simscope/icon"
	"github.com/lixenwraith/simscope/prefs"
	"github.com/lixenwraith/simscope/registry"
	"github.com/lixenwraith/simscope/render"
	"github.com/lixenwraith/simscope/track"
	"github.com/lixenwraith/simscope/vmath"
)

const (
	tickMs       = 33
	churnEveryMs = 5000
)

// simPlatform drives one orbiting track
type simPlatform struct {
	id      uint64
	angle   float64
	radius  float64
	speed   float64
	prefSet int
	frozen  bool
}

type Viewer struct {
	screen   tcell.Screen
	buf      *render.Buffer
	queue    *render.DrawQueue
	store    *track.Store
	factory  *icon.Factory
	notifier *alert.Notifier

	prefSets []prefs.PlatformPrefs
	sim      []*simPlatform

	width, height int
	lastChurn     time.Time
	churns        int
	alarmOn       bool
}

func NewViewer(iconDir string, prefSets []prefs.PlatformPrefs, platforms int) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	reg := registry.New()
	reg.AddSearchPath(iconDir)
	factory := icon.NewFactory(reg)

	v := &Viewer{
		screen:    screen,
		queue:     render.NewDrawQueue(),
		store:     track.NewStore(factory),
		factory:   factory,
		notifier:  alert.NewNotifier(),
		prefSets:  prefSets,
		lastChurn: time.Now(),
	}
	v.width, v.height = screen.Size()
	v.buf = render.NewBuffer(v.width, v.height)
	v.store.SetStaleness(4*time.Second, 10*time.Second)

	if err := v.notifier.Initialize(); err != nil {
		// Non-fatal, viewer can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	v.spawn(platforms)
	return v, nil
}

// demoPrefSets returns the handful of preference sets the platforms share
func demoPrefSets() []prefs.PlatformPrefs {
	friendly := prefs.Default()
	friendly.Icon = "friendly"
	friendly.LabelColor = prefs.Color{G: 220, B: 120}

	hostile := prefs.Default()
	hostile.Icon = "hostile"
	hostile.UseOverrideColor = true
	hostile.OverrideColor = prefs.Color{R: 255, G: 80, B: 80}
	hostile.LabelColor = prefs.Color{R: 255, G: 120, B: 120}

	neutral := prefs.Default()
	neutral.Icon = "neutral"
	neutral.NoDepth = false
	neutral.LabelColor = prefs.Color{R: 200, G: 200, B: 80}

	return []prefs.PlatformPrefs{friendly, hostile, neutral}
}

func (v *Viewer) spawn(count int) {
	now := time.Now()
	maxRadius := float64(v.height)/2 - 3
	if maxRadius < 4 {
		maxRadius = 4
	}

	for i := 0; i < count; i++ {
		sp := &simPlatform{
			id:      uint64(i + 1),
			angle:   rand.Float64() * 2 * math.Pi,
			radius:  4 + rand.Float64()*(maxRadius-4),
			speed:   0.2 + rand.Float64()*0.6,
			prefSet: i % len(v.prefSets),
		}
		v.sim = append(v.sim, sp)

		p := v.prefSets[sp.prefSet]
		p.Label = fmt.Sprintf("T%02d", sp.id)
		v.store.Add(sp.id, p, now)
	}
}

// step advances the simulation one tick and reports positions
func (v *Viewer) step(dt float64, now time.Time) {
	cx := float64(v.width) / 2
	cy := float64(v.height) / 2

	for _, sp := range v.sim {
		if sp.frozen {
			continue
		}
		sp.angle += sp.speed * dt
		x := cx + sp.radius*math.Cos(sp.angle)
		// Cells are taller than wide, flatten the orbit
		y := cy + sp.radius*math.Sin(sp.angle)*0.5
		v.store.UpdatePosition(sp.id, vmath.Vec3{
			X: vmath.FromFloat(x),
			Y: vmath.FromFloat(y),
		}, now)
	}
}

// churn mutates one preference set so every platform on it swaps to a
// freshly built sprite, evicting the old shared node
func (v *Viewer) churn() {
	v.churns++
	set := v.churns % len(v.prefSets)

	p := v.prefSets[set]
	p.Brightness = 18 + int32((v.churns*13)%54)
	v.prefSets[set] = p

	for _, sp := range v.sim {
		if sp.prefSet != set {
			continue
		}
		p.Label = fmt.Sprintf("T%02d", sp.id)
		v.store.UpdatePrefs(sp.id, p)
	}
}

// freezeSome stops updates for a third of the platforms so they go stale
func (v *Viewer) freezeSome() {
	for i, sp := range v.sim {
		if i%3 == 0 {
			sp.frozen = !sp.frozen
		}
	}
}

func (v *Viewer) handleSweep(now time.Time) {
	staleCount := 0
	for _, ev := range v.store.Sweep(now) {
		switch ev.State {
		case track.StateStale:
			v.notifier.Play(alert.ToneTrackStale)
		case track.StateLost:
			v.notifier.Play(alert.ToneTrackLost)
		case track.StateActive:
			v.notifier.Play(alert.ToneTrackNew)
		}
	}
	for _, sp := range v.sim {
		if sp.frozen {
			staleCount++
		}
	}
	if staleCount > 0 && !v.alarmOn {
		v.notifier.StartAlarm()
		v.alarmOn = true
	} else if staleCount == 0 && v.alarmOn {
		v.notifier.StopAlarm()
		v.alarmOn = false
	}
}

func project(pos vmath.Vec3) (int, int) {
	return vmath.Round(pos.X), vmath.Round(pos.Y)
}

func (v *Viewer) draw() {
	v.buf.Clear()
	v.store.Submit(v.queue, project)
	v.submitStatus()
	v.queue.Flush(v.buf)
	v.buf.FlushToScreen(v.screen)
}

func (v *Viewer) submitStatus() {
	platforms, nodes := v.store.Counts()
	text := fmt.Sprintf(" tracks %d  shared icons %d  draw runs %d  churns %d  [f]reeze [c]hurn [m]ute [q]uit ",
		platforms, nodes, v.queue.Runs(), v.churns)

	y := v.height - 1
	v.queue.Submit(render.PriorityStatus, 0, func(b *render.Buffer) {
		x := 0
		for _, r := range text {
			b.SetWithBg(x, y, r, render.RGBWhite, render.RGB{R: 40, G: 60, B: 90})
			x += runewidth.RuneWidth(r)
		}
	})
}

func (v *Viewer) handleResize() {
	w, h := v.screen.Size()
	if w != v.width || h != v.height {
		v.width, v.height = w, h
		v.buf.Resize(w, h)
	}
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'c':
				v.churn()
			case 'f':
				v.freezeSome()
			case 'm':
				v.notifier.SetMuted(!v.notifier.IsMuted())
			}
		}
	case *tcell.EventResize:
		v.handleResize()
	}
	return true
}

func (v *Viewer) run() {
	ticker := time.NewTicker(tickMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			v.step(float64(tickMs)/1000, now)
			if now.Sub(v.lastChurn).Milliseconds() > churnEveryMs {
				v.churn()
				v.lastChurn = now
			}
			v.handleSweep(now)
			v.draw()
		}
	}
}

func (v *Viewer) cleanup() {
	v.notifier.Cleanup()
	v.screen.Fini()
}

// writeDemoIcons generates the demo icon files when no icon directory is
// supplied
func writeDemoIcons(dir string) error {
	shapes := []struct {
		name string
		fill color.RGBA
		draw func(img *image.RGBA, fill color.RGBA)
	}{
		{"friendly.png", color.RGBA{G: 200, B: 80, A: 255}, drawCircle},
		{"hostile.png", color.RGBA{R: 220, G: 60, B: 60, A: 255}, drawDiamond},
		{"neutral.png", color.RGBA{R: 200, G: 200, B: 60, A: 255}, drawTriangle},
	}
	for _, s := range shapes {
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		s.draw(img, s.fill)
		f, err := os.Create(filepath.Join(dir, s.name))
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func drawCircle(img *image.RGBA, fill color.RGBA) {
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			dx, dy := float64(x)-7.5, float64(y)-7.5
			if dx*dx+dy*dy <= 49 {
				img.SetRGBA(x, y, fill)
			}
		}
	}
}

func drawDiamond(img *image.RGBA, fill color.RGBA) {
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if math.Abs(float64(x)-7.5)+math.Abs(float64(y)-7.5) <= 7.5 {
				img.SetRGBA(x, y, fill)
			}
		}
	}
}

func drawTriangle(img *image.RGBA, fill color.RGBA) {
	for y := 2; y < 14; y++ {
		half := (y - 2) * 8 / 12
		for x := 8 - half; x <= 8+half && x < 16; x++ {
			if x >= 0 {
				img.SetRGBA(x, y, fill)
			}
		}
	}
}

// loadPrefSets reads preference sets from a TOML file, sorted by section
// name so platform assignment is stable across runs
func loadPrefSets(path string) ([]prefs.PlatformPrefs, error) {
	byName, err := prefs.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if len(byName) == 0 {
		return nil, fmt.Errorf("prefs file %s: no platform sections", path)
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]prefs.PlatformPrefs, 0, len(names))
	for _, name := range names {
		sets = append(sets, byName[name])
	}
	return sets, nil
}

func main() {
	platforms := flag.Int("n", 24, "number of simulated platforms")
	iconDir := flag.String("icons", "", "icon search directory (default: generated demo icons)")
	prefsPath := flag.String("prefs", "", "platform preferences TOML file (default: built-in sets)")
	flag.Parse()

	prefSets := demoPrefSets()
	if *prefsPath != "" {
		loaded, err := loadPrefSets(*prefsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load prefs: %v\n", err)
			os.Exit(1)
		}
		prefSets = loaded
	}

	dir := *iconDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "simscope-icons-")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create icon dir: %v\n", err)
			os.Exit(1)
		}
		defer os.RemoveAll(tmp)
		if err := writeDemoIcons(tmp); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write demo icons: %v\n", err)
			os.Exit(1)
		}
		dir = tmp
	}

	viewer, err := NewViewer(dir, prefSets, *platforms)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()

	viewer.run()
}
