// This file is part of Stackscope.
//
// Stackscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Stackscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Stackscope.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stackscope/stackscope/display"
	"github.com/stackscope/stackscope/logger"
	"github.com/stackscope/stackscope/memimage"
	"github.com/stackscope/stackscope/modalflag"
	"github.com/stackscope/stackscope/paths"
	"github.com/stackscope/stackscope/prefs"
	"github.com/stackscope/stackscope/recorder"
	"github.com/stackscope/stackscope/session"
	"github.com/stackscope/stackscope/settings"
	"github.com/stackscope/stackscope/statsview"
	"github.com/stackscope/stackscope/terminal/easyterm"
	"github.com/stackscope/stackscope/version"
	"github.com/stackscope/stackscope/wsclient"
)

// redraw intervals. the display is only redrawn if something has changed
const (
	interactiveRefresh = 50 * time.Millisecond
	plainRefresh       = 2 * time.Second
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("WATCH", "REPLAY", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	switch md.Mode() {
	case "WATCH":
		err = watch(ctx, md)
	case "REPLAY":
		err = replay(ctx, md)
	case "VERSION":
		err = showVersion(md)
	}

	stop()

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, r, _ := version.Version()
		fmt.Println(r)
		return nil
	}

	fmt.Println(version.String())
	return nil
}

// newMemory creates a memory image of the requested size and loads it with
// the contents of the file, if a filename is specified.
func newMemory(size int, filename string) (*memimage.Image, error) {
	mem, err := memimage.NewImage(size)
	if err != nil {
		return nil, err
	}

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		if err := mem.LoadBytes(0, data); err != nil {
			return nil, err
		}
	}

	return mem, nil
}

// writeGraph writes a graphviz dump of the session models to a new file in
// the graphs resource directory.
func writeGraph(sess *session.Session) (string, error) {
	pth, err := paths.ResourcePath("graphs", paths.UniqueFilename("graph", "")+".dot")
	if err != nil {
		return "", err
	}
	return pth, writeGraphFile(sess, pth)
}

func writeGraphFile(sess *session.Session, pth string) error {
	f, err := os.Create(pth)
	if err != nil {
		return err
	}
	sess.WriteGraph(f)
	return f.Close()
}

// screen prepares the terminal for interactive use. the returned function
// must be called to restore the terminal.
func screen(plain bool) (*easyterm.Terminal, func(), error) {
	if plain || !easyterm.IsTerminal(os.Stdin) || !easyterm.IsTerminal(os.Stdout) {
		return nil, func() {}, nil
	}

	term := &easyterm.Terminal{}
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, nil, err
	}
	term.CBreakMode()
	term.Print(easyterm.HideCursor)

	return term, func() {
		term.CleanUp()
		term.Print("\n")
	}, nil
}

func redraw(term *easyterm.Terminal, out io.Writer, disp *display.Display) {
	if term != nil {
		term.Print(easyterm.CursorHome + easyterm.ClearScreen)
	}
	if err := disp.Render(out); err != nil {
		logger.Log(logger.Allow, "display", err)
	}
}

func watch(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("key commands: j/k select, u unselect, r reconnect, d disconnect, a toggle auto-reconnect, g write graph, q quit")

	addr := md.AddString("addr", "", "websocket `address` of the VM (overrides preferences)")
	noReconnect := md.AddBool("noreconnect", false, "do not reconnect automatically")
	memFile := md.AddString("memory", "", "load the memory image from a raw `file`")
	record := md.AddBool("record", false, "record the event stream to a tape file")
	log := md.AddBool("log", false, "echo diagnostics log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	plain := md.AddBool("plain", false, "plain output with no key commands")
	prefsOverride := md.AddString("prefs", "", "preferences for this session (key::value; ...)")
	savePrefs := md.AddBool("saveprefs", false, "save the preferences on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Printf("* unknown preferences: %s\n", unused)
			}
		}()
	}

	pref, err := settings.NewPreferences()
	if err != nil {
		return err
	}
	if *addr != "" {
		if err := pref.Address.Set(*addr); err != nil {
			return err
		}
	}
	if *noReconnect {
		_ = pref.AutoReconnect.Set(false)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(ctx, os.Stdout)
		} else {
			fmt.Println("* stats server not available in this build")
		}
	}

	mem, err := newMemory(pref.MemorySize.Get().(int), *memFile)
	if err != nil {
		return err
	}
	sess := session.NewSession(mem)

	address := pref.Address.String()
	auto := pref.AutoReconnect.Get().(bool)
	mgr := wsclient.NewManager(address, auto, pref.RetryDelay.Get().(time.Duration))

	var rec *recorder.Recorder
	if *record {
		var host string
		if u, err := url.Parse(address); err == nil {
			host = u.Hostname()
		}
		pth, err := paths.ResourcePath(pref.Recordings.String(), paths.UniqueFilename("tape", host)+".tape")
		if err != nil {
			return err
		}
		rec, err = recorder.NewRecorder(pth, recorder.Header{Address: address, MemorySize: mem.Len()})
		if err != nil {
			return err
		}
		defer func() {
			_ = rec.End()
			fmt.Printf("* recording saved to %s\n", pth)
		}()
	}

	disp := display.NewDisplay(sess, *plain)
	disp.SetConnectionInfo(address, auto)

	term, restore, err := screen(*plain)
	if err != nil {
		return err
	}
	defer restore()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var keys <-chan easyterm.Key
	var resized <-chan struct{}
	refresh := plainRefresh
	if term != nil {
		keys = term.Keys(ctx)
		resized = term.Resized()
		refresh = interactiveRefresh
	}

	go mgr.Run(ctx)

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	updates := mgr.Updates()
	dirty := true

	for updates != nil {
		select {
		case u, ok := <-updates:
			if !ok {
				updates = nil
				break // select
			}

			if rec != nil {
				if err := rec.Record(u); err != nil {
					logger.Log(logger.Allow, "recorder", err)
				}
			}

			if u.IsState {
				sess.OnConnectionStateChanged(u.State)
			} else {
				_ = sess.ApplyRaw(u.Payload)
			}
			dirty = true

		case k, ok := <-keys:
			if !ok {
				keys = nil
				break // select
			}

			switch disp.HandleKey(k) {
			case display.CommandQuit:
				cancel()
			case display.CommandReconnect:
				mgr.Reconnect()
			case display.CommandDisconnect:
				mgr.Disconnect()
			case display.CommandToggleAutoReconnect:
				auto = !auto
				_ = pref.AutoReconnect.Set(auto)
				mgr.SetAutoReconnect(auto)
				disp.SetConnectionInfo(address, auto)
			case display.CommandWriteGraph:
				if pth, err := writeGraph(sess); err != nil {
					logger.Log(logger.Allow, "graph", err)
				} else {
					logger.Logf(logger.Allow, "graph", "written to %s", pth)
				}
			}
			dirty = true

		case <-resized:
			dirty = true

		case <-ticker.C:
			if dirty {
				redraw(term, os.Stdout, disp)
				dirty = false
			}
		}
	}

	redraw(term, os.Stdout, disp)

	if *savePrefs {
		return pref.Save()
	}

	return nil
}
