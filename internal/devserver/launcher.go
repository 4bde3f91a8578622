// Package devserver runs an external live-reload development server as a
// child process for the lifetime of a window.
package devserver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

const (
	// DefaultPort is the fixed port the dev server is told to listen on.
	DefaultPort = 5173

	// PortPlaceholder in a command argument is replaced by the configured port.
	PortPlaceholder = "{port}"

	stopTimeout = 5 * time.Second

	// maxLogLine is the longest output line forwarded to Log.
	maxLogLine = 1 << 20
)

// DefaultCommand starts Vite on the fixed port and fails rather than picking
// another port when it is taken.
var DefaultCommand = []string{"npx", "vite", "--port", PortPlaceholder, "--strictPort"}

// AddressFor returns the loopback address a dev server on port is reachable at.
func AddressFor(port int) string {
	return fmt.Sprintf("http://localhost:%d/", port)
}

// Launcher starts dev server processes.
type Launcher struct {
	// Command is the argv to run; PortPlaceholder is expanded. Defaults to DefaultCommand.
	Command []string
	// Port defaults to DefaultPort.
	Port int
	// Env holds extra KEY=VALUE entries appended to the inherited environment.
	Env []string
	// If non-nil, Log receives every stdout/stderr line of the process.
	Log func(line string, stderr bool)
}

func (l *Launcher) port() int {
	if l == nil || l.Port <= 0 {
		return DefaultPort
	}
	return l.Port
}

// Address returns the address Start will report. It does not depend on the
// project directory or the working directory.
func (l *Launcher) Address() string {
	return AddressFor(l.port())
}

// Argv returns the command line with the port expanded.
func (l *Launcher) Argv() []string {
	command := DefaultCommand
	if l != nil && len(l.Command) > 0 {
		command = l.Command
	}
	port := strconv.Itoa(l.port())
	return lo.Map(command, func(arg string, _ int) string {
		return strings.ReplaceAll(arg, PortPlaceholder, port)
	})
}

// Start spawns the dev server in projectDir and returns as soon as the
// process is running. It does not wait for the server to accept connections;
// see WaitReady.
func (l *Launcher) Start(projectDir string) (*Server, error) {
	argv := l.Argv()

	info, err := os.Stat(projectDir)
	if err != nil {
		return nil, &LaunchError{Command: argv, Dir: projectDir, Err: err}
	}
	if !info.IsDir() {
		return nil, &LaunchError{Command: argv, Dir: projectDir, Err: fmt.Errorf("not a directory")}
	}

	c := exec.Command(argv[0], argv[1:]...)
	c.Dir = projectDir
	c.Env = os.Environ()
	if l != nil {
		c.Env = append(c.Env, l.Env...)
	}
	detach(c)

	stdout, err := c.StdoutPipe()
	if err != nil {
		return nil, &LaunchError{Command: argv, Dir: projectDir, Err: err}
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return nil, &LaunchError{Command: argv, Dir: projectDir, Err: err}
	}

	if err := c.Start(); err != nil {
		return nil, &LaunchError{Command: argv, Dir: projectDir, Err: err}
	}

	s := &Server{
		address: l.Address(),
		cmd:     c,
		done:    make(chan struct{}),
	}

	var readers sync.WaitGroup
	readers.Add(2)
	go s.pipeLog(&readers, stdout, false, l.logFunc())
	go s.pipeLog(&readers, stderr, true, l.logFunc())

	go func() {
		readers.Wait()
		s.err = c.Wait()
		close(s.done)
	}()

	return s, nil
}

func (l *Launcher) logFunc() func(string, bool) {
	if l == nil || l.Log == nil {
		return func(string, bool) {}
	}
	return l.Log
}

// Server is a running dev server process.
type Server struct {
	address string
	cmd     *exec.Cmd
	done    chan struct{}
	err     error
	once    sync.Once
	stopErr error
}

// Address returns the base address the server was told to listen on.
func (s *Server) Address() string {
	return s.address
}

// Pid returns the process id of the spawned command.
func (s *Server) Pid() int {
	return s.cmd.Process.Pid
}

// Done is closed when the process has exited.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the process exits and returns its exit error.
func (s *Server) Wait() error {
	<-s.done
	return s.err
}

// Stop terminates the server and everything it spawned, escalating to a kill
// if it has not exited within a few seconds. It is safe to call more than once.
func (s *Server) Stop() error {
	s.once.Do(func() {
		select {
		case <-s.done:
			return
		default:
		}

		if err := terminate(s.cmd); err != nil && !errors.Is(err, os.ErrProcessDone) {
			s.stopErr = fmt.Errorf("failed to terminate dev server: %w", err)
		}

		select {
		case <-s.done:
		case <-time.After(stopTimeout):
			if err := kill(s.cmd); err != nil && !errors.Is(err, os.ErrProcessDone) {
				s.stopErr = fmt.Errorf("failed to kill dev server: %w", err)
				return
			}
			<-s.done
		}
	})
	return s.stopErr
}

func (s *Server) pipeLog(wg *sync.WaitGroup, r io.Reader, stderr bool, log func(string, bool)) {
	defer wg.Done()
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), maxLogLine)
	for scan.Scan() {
		log(scan.Text(), stderr)
	}
	if err := scan.Err(); err != nil {
		log(fmt.Sprintf("dev server output dropped: %v", err), true)
	}
	// Keep the pipe drained so the child never blocks on a full buffer.
	_, _ = io.Copy(io.Discard, r)
}
