// Package host binds a power.Module to a line oriented command stream,
// standing in for the host loader.
package host

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"codeberg.org/mutker/powerhal/internal/errors"
	"codeberg.org/mutker/powerhal/internal/logger"
	"codeberg.org/mutker/powerhal/internal/power"
)

const responseOK = "ok"

type infoProvider interface {
	Info() power.Info
}

type Server struct {
	module power.Module
	logger logger.Logger
}

func NewServer(module power.Module, log logger.Logger) *Server {
	return &Server{module: module, logger: log}
}

// Serve executes commands read from r, one per line, writing one response
// line per command to w. It returns when r is exhausted or ctx is done.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	errFactory := errors.New()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return errFactory.Wrap(errors.ErrServeFailed, err)
					}
				default:
				}
				return nil
			}

			resp, err := s.Execute(line)
			if err != nil {
				s.logger.Warn().Err(err).Str("command", line).Msg("Rejected command")
				resp = "error: " + err.Error()
			}
			if resp == "" {
				continue
			}
			if _, err := fmt.Fprintln(w, resp); err != nil {
				return errFactory.Wrap(errors.ErrServeFailed, err)
			}
		}
	}
}

// Execute runs a single command line. Blank lines and comments yield an
// empty response.
func (s *Server) Execute(line string) (string, error) {
	errFactory := errors.New()

	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	verb, args := strings.ToLower(fields[0]), fields[1:]
	s.logger.Debug().Str("verb", verb).Strs("args", args).Msg("Executing command")

	switch verb {
	case "init":
		if err := expectArgs(args, 0, 0); err != nil {
			return "", err
		}
		s.module.Init()
		return responseOK, nil

	case "interactive", "set_interactive":
		if err := expectArgs(args, 1, 1); err != nil {
			return "", err
		}
		on, err := parseSwitch(args[0])
		if err != nil {
			return "", err
		}
		s.module.SetInteractive(on)
		return responseOK, nil

	case "hint", "power_hint":
		if err := expectArgs(args, 1, 2); err != nil {
			return "", err
		}
		hint, err := power.ParseHint(args[0])
		if err != nil {
			return "", errFactory.Wrap(errors.ErrInvalidCommand, err)
		}
		var data int32
		if len(args) == 2 {
			if data, err = parseHintData(hint, args[1]); err != nil {
				return "", err
			}
		}
		s.module.PowerHint(hint, data)
		return responseOK, nil

	case "set_feature":
		if err := expectArgs(args, 2, 2); err != nil {
			return "", err
		}
		feature, err := power.ParseFeature(args[0])
		if err != nil {
			return "", errFactory.Wrap(errors.ErrInvalidCommand, err)
		}
		state, err := strconv.Atoi(args[1])
		if err != nil {
			return "", errFactory.WithData(errors.ErrInvalidCommand, "bad feature state "+strconv.Quote(args[1]))
		}
		s.module.SetFeature(feature, state)
		return responseOK, nil

	case "get_feature":
		if err := expectArgs(args, 1, 1); err != nil {
			return "", err
		}
		feature, err := power.ParseFeature(args[0])
		if err != nil {
			return "", errFactory.Wrap(errors.ErrInvalidCommand, err)
		}
		return strconv.Itoa(s.module.GetFeature(feature)), nil

	case "info":
		p, ok := s.module.(infoProvider)
		if !ok {
			return "", errFactory.New(errors.ErrNotImplemented)
		}
		info := p.Info()
		return fmt.Sprintf("%s %q %q module_api=%s hal_api=%s",
			info.ID, info.Name, info.Author, info.ModuleAPIVersion, info.HALAPIVersion), nil

	default:
		return "", errFactory.WithData(errors.ErrInvalidCommand, "unknown command "+strconv.Quote(verb))
	}
}

func expectArgs(args []string, minArgs, maxArgs int) error {
	if len(args) < minArgs || len(args) > maxArgs {
		return errors.New().WithData(errors.ErrInvalidCommand, fmt.Sprintf("expected %d to %d arguments, got %d", minArgs, maxArgs, len(args)))
	}
	return nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}

	on, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.New().WithData(errors.ErrInvalidCommand, "bad interactive state "+strconv.Quote(s))
	}
	return on, nil
}

func parseHintData(hint power.Hint, s string) (int32, error) {
	if hint == power.HintSetProfile {
		if p, err := power.ParseProfile(s); err == nil {
			return int32(p), nil
		}
	}

	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, errors.New().WithData(errors.ErrInvalidCommand, "bad hint data "+strconv.Quote(s))
	}
	return int32(n), nil
}
