package launcher

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"syscall"
	"time"

	"finance-tracker/config"
)

// Launcher turns environment-derived configuration into a single Streamlit
// invocation and then replaces the current process with it. Exec and LookPath
// are swappable so tests can observe the handoff without leaving the test
// process.
type Launcher struct {
	Cfg            *config.Config
	CredentialFile string

	Exec     func(argv0 string, argv []string, envv []string) error
	LookPath func(file string) (string, error)
}

// New returns a launcher wired to the real exec primitives.
func New(cfg *config.Config) *Launcher {
	return &Launcher{
		Cfg:            cfg,
		CredentialFile: config.CredentialFile,
		Exec:           syscall.Exec,
		LookPath:       exec.LookPath,
	}
}

// WriteCredentials stages the service-account payload at path and points
// GOOGLE_APPLICATION_CREDENTIALS at it for the exec'd process. An empty
// payload means no credentials were provided: nothing is written and the
// variable stays unset. The payload is opaque text, written verbatim plus a
// trailing newline; the file is closed before the variable is set so the
// downstream process can never observe a partial write.
func WriteCredentials(payload, path string) error {
	if payload == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create credential file %s: %w", path, err)
	}
	if _, err := f.WriteString(payload + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("write credential file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close credential file %s: %w", path, err)
	}

	if err := os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", path); err != nil {
		return fmt.Errorf("set GOOGLE_APPLICATION_CREDENTIALS: %w", err)
	}
	return nil
}

// Args builds the Streamlit argv for the resolved port. The bind address is
// fixed to all interfaces for the container context.
func (l *Launcher) Args() []string {
	return []string{
		l.Cfg.StreamlitBin,
		"run", config.AppFile,
		"--server.port", l.Cfg.Port,
		"--server.address", config.BindAddress,
	}
}

// Run executes the bootstrap sequence: stage credentials, then exec Streamlit.
// On success it does not return — the process image is replaced, so the
// server keeps this PID and receives orchestrator signals directly. Any error
// aborts the sequence before the handoff.
func (l *Launcher) Run() error {
	if err := WriteCredentials(l.Cfg.FirebaseKey, l.CredentialFile); err != nil {
		return err
	}

	// Optional delay so platform-injected dependencies settle before boot
	if l.Cfg.StartupDelay > 0 {
		log.Printf("Applying startup delay: %v", l.Cfg.StartupDelay)
		time.Sleep(l.Cfg.StartupDelay)
	}

	target, err := l.LookPath(l.Cfg.StreamlitBin)
	if err != nil {
		return fmt.Errorf("locate %s: %w", l.Cfg.StreamlitBin, err)
	}

	log.Printf("🚀 [LAUNCH] Handing off to %s on %s:%s", target, config.BindAddress, l.Cfg.Port)
	if err := l.Exec(target, l.Args(), os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", target, err)
	}
	return nil
}
