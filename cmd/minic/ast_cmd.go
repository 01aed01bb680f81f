package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jmespath-community/go-jmespath"
	"github.com/spf13/cobra"

	minic "github.com/DanielGaull/miniC"
	"github.com/DanielGaull/miniC/ast"
	"github.com/DanielGaull/miniC/codegen"
	"github.com/DanielGaull/miniC/frontend"
)

func (a *app) astCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the AST built from an event stream",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.printAST,
	}
	cmd.Flags().Bool("rewrite", false, "print the AST after the configured transformers ran")
	cmd.Flags().StringP("query", "q", "", "JMESPath expression selecting part of the AST")
	return cmd
}

func (a *app) printAST(cmd *cobra.Command, args []string) error {
	in, err := a.readInput(cmd, args)
	if err != nil {
		return err
	}
	root, err := frontend.Decode(bytes.NewReader(in.data), in.format)
	if err != nil {
		return err
	}
	program, err := frontend.Build(root, frontend.WithFilename(in.name))
	if err != nil {
		return err
	}
	if rewrite, _ := cmd.Flags().GetBool("rewrite"); rewrite {
		opts, err := a.pipelineOptions(in)
		if err != nil {
			return err
		}
		if program, err = minic.Rewrite(program, opts...); err != nil {
			return err
		}
	}

	var result any = nodeToJSON(codegen.New(), program)
	if query, _ := cmd.Flags().GetString("query"); query != "" {
		if result, err = queryAST(result, query); err != nil {
			return err
		}
	}
	output, err := marshalJSON(result, a.noColor)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return err
}

// queryAST evaluates a JMESPath expression against the JSON form of tree.
func queryAST(tree any, query string) (any, error) {
	data, err := json.Marshal(tree)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	result, err := jmespath.Search(query, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}
	return result, nil
}

// astNode represents a node in the JSON AST output.
type astNode struct {
	Type     string     `json:"type"`
	Value    string     `json:"value,omitempty"`
	Children []*astNode `json:"children,omitempty"`
}

func nodeToJSON(g *codegen.Generator, node ast.Node) *astNode {
	result := &astNode{Type: ast.Describe(node), Value: nodeValue(g, node)}
	for _, child := range ast.Children(node) {
		result.Children = append(result.Children, nodeToJSON(g, child))
	}
	return result
}

// nodeValue returns the name, operator or literal text carried by node.
func nodeValue(g *codegen.Generator, node ast.Node) string {
	switch n := node.(type) {
	case *ast.VarDeclaration:
		return n.Name
	case *ast.Import:
		return n.Path
	case *ast.FunctionHeader:
		return n.Name
	case *ast.Function:
		return n.Header.Name
	case *ast.Aggregate:
		return n.Name
	case *ast.Field:
		return n.Name
	case *ast.Enum:
		return n.Name
	case *ast.TypeDef:
		return n.Name
	case *ast.Module:
		return n.Name
	case *ast.PreprocessorDirective:
		return n.Text
	case ast.Type:
		return g.Type(n)
	case *ast.VarDecl:
		return n.Name
	case *ast.CompoundAssign:
		return string(n.Op) + "="
	case *ast.Unary:
		return string(n.Op)
	case *ast.Binary:
		return string(n.Op)
	case *ast.Call:
		return strconv.Itoa(len(n.Args)) + " args"
	case *ast.MemberAccess:
		return n.Member
	case *ast.PointerAccess:
		return n.Member
	case *ast.CharLiteral, *ast.ShortLiteral, *ast.IntLiteral, *ast.LongLiteral,
		*ast.FloatLiteral, *ast.DoubleLiteral, *ast.BoolLiteral, *ast.StringLiteral,
		*ast.Ident:
		return g.Atom(n.(ast.Atom))
	default:
		return ""
	}
}
