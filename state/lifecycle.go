package state

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"pagecss/config"
	"pagecss/misc"
)

// Open loads configuration from configFile (defaults when empty), prepares
// debug report when requested and sets up logging. Both the user supplied
// configuration and the effective one end up in the report.
func (e *LocalEnv) Open(configFile string, report bool) (err error) {
	if e.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if report {
		if e.Rpt, err = e.Cfg.Reporting.Prepare(); err != nil {
			return fmt.Errorf("unable to prepare debug report: %w", err)
		}
		if len(configFile) > 0 {
			e.Rpt.Store("config/"+filepath.Base(configFile), configFile)
		}
		if data, err := config.Dump(e.Cfg); err == nil {
			e.Rpt.StoreData("config/effective.yaml", data)
		}
	}
	if e.Log, err = e.Cfg.Logging.Prepare(e.Rpt); err != nil {
		return fmt.Errorf("unable to prepare logs: %w", err)
	}
	e.RedirectStdLog()

	e.Log.Debug("Program started",
		zap.Strings("args", os.Args),
		zap.String("ver", misc.GetVersion()),
		zap.String("runtime", runtime.Version()),
		zap.String("hash", misc.GetGitHash()))
	if e.Rpt != nil {
		e.Log.Info("Creating debug report", zap.String("location", e.Rpt.Name()))
	}
	if len(configFile) == 0 {
		e.Log.Debug("Using defaults (no configuration file)")
	}
	return nil
}

// Close flushes logs and finalizes debug report. After that errors could only
// go to stderr.
func (e *LocalEnv) Close() (err error) {
	if e.Log != nil {
		e.Log.Debug("Program ended", zap.Duration("elapsed", e.Uptime()))
	}
	e.RestoreStdLog()

	if e.Rpt != nil {
		if er := e.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	if e.Cfg != nil && len(e.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		err = multierr.Append(err, removeEmptyFile(
			filepath.Join(filepath.Dir(e.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")))
	}
	return err
}

func removeEmptyFile(name string) error {
	fi, err := os.Stat(name)
	if err != nil || fi.Size() != 0 {
		return nil
	}
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("unable to remove empty panic log file '%s': %w", name, err)
	}
	return nil
}
