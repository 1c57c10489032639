package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dangerclosesec/biza/analysis"
	"github.com/dangerclosesec/biza/analysis/binding"
	"github.com/dangerclosesec/biza/analysis/diagnostic"
	"github.com/dangerclosesec/biza/analysis/syntax"
	"github.com/spf13/cobra"
)

func newLexCmd() *cobra.Command {
	var showWhitespace bool

	cmd := &cobra.Command{
		Use:   "lex [expression]",
		Short: "Print the tokens of an expression",
		Long:  `Lex an expression and print one token per line. Whitespace tokens are hidden unless --show-whitespace is set.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, diagnostics := syntax.Lex(args[0])
			slog.Debug("Lexed source", "tokens", len(tokens), "diagnostics", len(diagnostics))

			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				if tok.Kind == syntax.WhitespaceToken && !showWhitespace {
					continue
				}
				fmt.Fprintln(out, tok)
			}

			return reportDiagnostics(cmd.ErrOrStderr(), diagnostics)
		},
	}

	cmd.Flags().BoolVar(&showWhitespace, "show-whitespace", false, "Include whitespace tokens")
	return cmd
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [expression]",
		Short: "Print the syntax tree of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := syntax.ParseSyntaxTree(args[0])
			slog.Debug("Parsed source", "root", tree.Root.SyntaxKind(), "diagnostics", len(tree.Diagnostics))

			if err := syntax.PrettyPrint(cmd.OutOrStdout(), tree.Root); err != nil {
				return err
			}
			return reportDiagnostics(cmd.ErrOrStderr(), tree.Diagnostics)
		},
	}
}

func newBindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bind [expression]",
		Short: "Print the bound tree of an expression",
		Long:  `Bind an expression and print the bound tree with the operator and type of each node.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := analysis.NewCompilation(args[0]).Bind()
			slog.Debug("Bound source", "type", result.Root.Type(), "diagnostics", len(result.Diagnostics))

			if err := printBound(cmd.OutOrStdout(), result.Root, "", true); err != nil {
				return err
			}
			return reportDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)
		},
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := analysis.NewCompilation(args[0]).Evaluate()
			if !result.Succeeded() {
				return reportDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)
			}

			slog.Debug("Evaluated source", "type", result.Type)
			fmt.Fprintln(cmd.OutOrStdout(), result.Value)
			return nil
		},
	}
}

// reportDiagnostics prints diagnostics as "(start, length): message" and
// returns errDiagnostics when there are any
func reportDiagnostics(w io.Writer, diagnostics []diagnostic.Diagnostic) error {
	if len(diagnostics) == 0 {
		return nil
	}
	for _, d := range diagnostics {
		fmt.Fprintf(w, "%s: %s\n", d.Span, d.Message)
	}
	return errDiagnostics
}

func printBound(w io.Writer, node binding.Expression, indent string, isLast bool) error {
	marker := "├──"
	if isLast {
		marker = "└──"
	}

	var label string
	var children []binding.Expression
	switch n := node.(type) {
	case *binding.LiteralExpression:
		label = fmt.Sprintf("LiteralExpression %v", n.Value)
	case *binding.UnaryExpression:
		label = fmt.Sprintf("UnaryExpression %s", n.Op.Kind)
		children = []binding.Expression{n.Operand}
	case *binding.BinaryExpression:
		label = fmt.Sprintf("BinaryExpression %s", n.Op.Kind)
		children = []binding.Expression{n.Left, n.Right}
	default:
		return fmt.Errorf("unexpected bound node %T", node)
	}

	if _, err := fmt.Fprintf(w, "%s%s%s : %s\n", indent, marker, label, node.Type()); err != nil {
		return err
	}

	if isLast {
		indent += "   "
	} else {
		indent += "│  "
	}
	for i, child := range children {
		if err := printBound(w, child, indent, i == len(children)-1); err != nil {
			return err
		}
	}
	return nil
}
