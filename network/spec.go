package network

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// delimiters may not appear in node names.
const delimiters = "~+-<>[](),:"

// line is one declaration of the specification.
type line struct {
	number    int
	name      string
	logic     string
	essential bool
}

// normalize strips quotes and expands escaped newlines.
func normalize(spec string) string {
	spec = strings.ReplaceAll(spec, `\n`, "\n")
	return strings.ReplaceAll(spec, `"`, "")
}

// splitLines reads "name : logic [: essential]" declarations, skipping blank
// lines and lines starting with '.' or '@'.
func splitLines(spec string) ([]line, error) {
	var out []line
	seen := make(map[string]int)
	for no, raw := range strings.Split(spec, "\n") {
		text := strings.TrimSpace(raw)
		if text == "" || text[0] == '.' || text[0] == '@' {
			continue
		}
		fields := strings.SplitN(text, ":", 3)
		name := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, fields[0])
		l := line{number: no + 1, name: name}
		if name == "" || strings.ContainsAny(name, delimiters) {
			return nil, &ParseError{Node: name, Line: l.number, Pos: -1,
				Err: fmt.Errorf("%w %q", ErrInvalidNodeName, strings.TrimSpace(fields[0]))}
		}
		if prev, dup := seen[name]; dup {
			return nil, &ParseError{Node: name, Line: l.number, Pos: -1,
				Err: fmt.Errorf("%w %q (first declared on line %d)", ErrDuplicateNode, name, prev)}
		}
		seen[name] = l.number
		if len(fields) > 1 {
			l.logic = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			l.essential = strings.TrimSpace(fields[2]) != ""
		}
		out = append(out, l)
	}

	return out, nil
}

// New builds a network from spec, which is treated as inline text when it
// contains ':' and as a file path otherwise.
func New(spec string, opts ...Option) (*Network, error) {
	if strings.Contains(spec, ":") {
		return Parse(spec, opts...)
	}
	return Load(spec, opts...)
}

// Load reads and parses the specification file at path.
func Load(path string, opts ...Option) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		o := applyOptions(opts)
		o.metrics.RecordParse(0, ErrorKind(ErrUnreadableFile), 0)
		return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}
	return Parse(string(data), opts...)
}

// Parse parses inline specification text.
func Parse(spec string, opts ...Option) (*Network, error) {
	return ParseContext(context.Background(), spec, opts...)
}

// ParseContext parses spec, running per-node logic parsing on up to
// WithParallelism goroutines. Each node's logic is parsed independently;
// when several fail, the error of the lowest node index is returned.
func ParseContext(ctx context.Context, spec string, opts ...Option) (*Network, error) {
	o := applyOptions(opts)
	start := time.Now()

	n, err := parse(ctx, normalize(spec), o)
	if err != nil {
		o.metrics.RecordParse(0, ErrorKind(err), time.Since(start))
		o.logger.Debug("network rejected", zap.Stringer("model", o.model), zap.Error(err))
		return nil, err
	}
	o.metrics.RecordParse(n.Size(), "", time.Since(start))
	o.logger.Debug("network parsed",
		zap.Stringer("model", o.model),
		zap.Int("nodes", n.Size()),
		zap.Int("edges", len(n.edges)),
		zap.Duration("elapsed", time.Since(start)))

	return n, nil
}

func parse(ctx context.Context, spec string, o options) (*Network, error) {
	// 1. Pre-pass: declare every name so logic may reference later lines
	lines, err := splitLines(spec)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(lines))
	lookup := make(map[string]int, len(lines))
	for i, l := range lines {
		names[i] = l.name
		lookup[l.name] = i
	}

	// 2. Parse each node's logic into its own slot
	g := o.model.grammar()
	parsed := make([]parsedLogic, len(lines))
	failures := make([]error, len(lines))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(o.parallelism, 1))
	for i := range lines {
		i := i
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			parsed[i], failures[i] = parseLogic(g, i, lines[i].number, names, lookup, lines[i].logic)
			if failures[i] == nil {
				o.logger.Debug("node parsed", zap.String("node", names[i]), zap.Int("terms", len(parsed[i].terms)))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	for _, err := range failures {
		if err != nil {
			return nil, err
		}
	}

	// 3. Arena, instances, outputs and thresholds
	return build(o.model, spec, lines, parsed), nil
}
