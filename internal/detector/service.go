package detector

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// service is a long-running helper process answering one request line per
// frame written to its stdin.
type service struct {
	name string
	argv []string

	proc *exec.Cmd
	in   io.WriteCloser
	out  *bufio.Reader
}

func newService(name string, argv ...string) *service {
	return &service{name: name, argv: argv}
}

func (s *service) running() bool {
	return s.proc != nil
}

// start launches the process if it is not already up.
func (s *service) start() error {
	if s.running() {
		return nil
	}

	proc := exec.Command(s.argv[0], s.argv[1:]...)
	proc.Stderr = os.Stderr

	in, err := proc.StdinPipe()
	if err != nil {
		return fmt.Errorf("%s stdin: %w", s.name, err)
	}
	out, err := proc.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%s stdout: %w", s.name, err)
	}
	if err := proc.Start(); err != nil {
		return fmt.Errorf("start %s: %w", s.name, err)
	}

	s.proc, s.in, s.out = proc, in, bufio.NewReader(out)
	return nil
}

// exchange sends one frame and reads the reply line. Any I/O failure stops
// the process so the next call starts a fresh one.
func (s *service) exchange(frame []byte) ([]byte, error) {
	if err := writeFrame(s.in, frame); err != nil {
		s.stop()
		return nil, err
	}

	reply, err := s.out.ReadBytes('\n')
	if err != nil {
		s.stop()
		return nil, fmt.Errorf("read response: %w", err)
	}
	return reply, nil
}

// stop closes stdin and waits for the process to exit.
func (s *service) stop() error {
	if !s.running() {
		return nil
	}

	s.in.Close()
	err := s.proc.Wait()
	s.proc, s.in, s.out = nil, nil, nil
	return err
}

// locate returns the absolute path of the first candidate that exists.
func locate(candidates ...string) string {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	return ""
}

// searchDirs are the directories checked for the service script and the
// Python virtual environment: the working directory, its parent, the
// executable's directory and ~/.handwriting.
func searchDirs() []string {
	dirs := []string{".", ".."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".handwriting"))
	}
	return dirs
}

func findMediaPipeScript() string {
	var candidates []string
	for _, dir := range searchDirs() {
		candidates = append(candidates, filepath.Join(dir, "scripts", ServiceScript))
	}
	return locate(candidates...)
}

// pythonInterpreter prefers a virtual environment next to the script
// search paths and falls back to python3 on PATH.
func pythonInterpreter() string {
	var candidates []string
	for _, dir := range searchDirs() {
		candidates = append(candidates, filepath.Join(dir, "venv", "bin", "python"))
	}
	if p := locate(candidates...); p != "" {
		return p
	}
	return "python3"
}
