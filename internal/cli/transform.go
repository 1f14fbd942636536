package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/nerdneilsfield/go-editor-lang/internal/textenc"
	"github.com/nerdneilsfield/go-editor-lang/pkg/languages"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxSuggestDistance 名称建议允许的最大编辑距离
const maxSuggestDistance = 2

// transformFunc 美化或压缩
type transformFunc func(languages.Language, string) (string, error)

func newDetectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file]",
		Short: "输出内容对应的格式名称",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			lang := a.registry.Detect(content)
			name := color.New(color.FgGreen, color.Bold).Sprint(lang.Name())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, lang.Label())
			return err
		},
	}
}

func newTransformCommand(a *app, use, short string, fn transformFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.write && len(args) == 0 {
				return fmt.Errorf("--write requires a file argument")
			}

			content, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			lang, err := a.resolve(content)
			if err != nil {
				return err
			}

			result, err := fn(lang, content)
			if err != nil {
				return fmt.Errorf("%s failed: %w", use, err)
			}

			a.log.Debug("content transformed",
				zap.String("op", use),
				zap.String("language", lang.Name()),
				zap.Int("input_size", len(content)),
				zap.Int("output_size", len(result)))

			if a.opts.write {
				if err := os.WriteFile(args[0], []byte(result), 0o644); err != nil {
					return fmt.Errorf("failed to write file: %w", err)
				}
				pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln("%s: %s (%s)", use, args[0], lang.Name())
				return nil
			}

			out := cmd.OutOrStdout()
			if _, err := io.WriteString(out, result); err != nil {
				return err
			}
			if !strings.HasSuffix(result, "\n") {
				_, err = io.WriteString(out, "\n")
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&a.opts.write, "write", "w", false, "将结果写回文件")
	return cmd
}

// resolve 使用指定的格式，未指定时按内容检测
func (a *app) resolve(content string) (languages.Language, error) {
	name := a.cfg.Language
	if name == "" {
		return a.registry.Detect(content), nil
	}

	lang, ok := a.registry.ByName(name)
	if !ok {
		msg := fmt.Sprintf("unknown language %q", name)
		if hints := suggest(name, a.registry.Names()); len(hints) > 0 {
			msg += fmt.Sprintf(", did you mean: %s", strings.Join(hints, ", "))
		}
		return nil, errors.New(msg)
	}

	if !lang.IsValid(content) {
		a.log.Warn("content is not valid for the selected language",
			zap.String("language", lang.Name()))
	}
	return lang, nil
}

// suggest 返回与 name 相近的格式名称
func suggest(name string, names []string) []string {
	seen := make(map[string]bool)
	var hints []string

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	sort.Sort(ranks)
	for _, r := range ranks {
		if !seen[r.Target] {
			seen[r.Target] = true
			hints = append(hints, r.Target)
		}
	}

	for _, candidate := range names {
		if seen[candidate] {
			continue
		}
		if fuzzy.LevenshteinDistance(strings.ToLower(name), candidate) <= maxSuggestDistance {
			seen[candidate] = true
			hints = append(hints, candidate)
		}
	}

	return hints
}

// readInput 读取文件或标准输入并转换为 UTF-8
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return textenc.Decode(data), nil
}
