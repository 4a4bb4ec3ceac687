package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/mikenye/geom2d/sweep"
	"github.com/mikenye/geom2d/types"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "geomops",
		Usage: "Runs Boolean set operations over JSON-encoded multipolygons and prints the result to stdout",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "accurate",
				Usage: "Coerce operands through exact arithmetic before sweeping",
			},
		},
		Commands: []*cli.Command{
			operationCommand("unite", "Computes the union of two or more operands", types.BooleanOpUnion, -1),
			operationCommand("intersect", "Computes the intersection of two operands", types.BooleanOpIntersection, 2),
			operationCommand("subtract", "Computes the first operand minus the second", types.BooleanOpDifference, 2),
			operationCommand("symmetric-subtract", "Computes the symmetric difference of two operands", types.BooleanOpSymmetricDifference, 2),
			completeIntersectCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// operationCommand builds a subcommand that reads exactly minOperands (or
// two or more, when minOperands is -1) JSON multipolygon files named as
// positional arguments and runs op over them via sweep.ComputeMultipolygon.
func operationCommand(name, usage string, op types.BooleanOp, minOperands int) *cli.Command {
	want := minOperands
	usageText := fmt.Sprintf("geomops %s [--accurate] <file> <file>", name)
	if want < 0 {
		want = 2
		usageText += " [<file> ...]"
	}
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		UsageText: usageText,
		Action: func(_ context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) < want {
				return fmt.Errorf("%s requires at least %d operand files, got %d", name, want, len(paths))
			}
			if minOperands >= 0 && len(paths) != minOperands {
				return fmt.Errorf("%s takes exactly %d operand files, got %d", name, minOperands, len(paths))
			}

			operands := make([]sweep.Multipolygon, len(paths))
			for i, p := range paths {
				mp, err := readMultipolygon(p)
				if err != nil {
					return err
				}
				operands[i] = mp
			}

			result, err := sweep.ComputeMultipolygon(op, cmd.Bool("accurate"), operands...)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}

func completeIntersectCommand() *cli.Command {
	return &cli.Command{
		Name:      "complete-intersect",
		Usage:     "Computes the intersection of two operands plus isolated touch points and overlap remnants",
		UsageText: "geomops complete-intersect [--accurate] <file> <file>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) != 2 {
				return fmt.Errorf("complete-intersect takes exactly 2 operand files, got %d", len(paths))
			}
			a, err := readMultipolygon(paths[0])
			if err != nil {
				return err
			}
			b, err := readMultipolygon(paths[1])
			if err != nil {
				return err
			}
			mix, err := sweep.CompleteIntersect(cmd.Bool("accurate"), a, b)
			if err != nil {
				return err
			}
			return printJSON(mix)
		},
	}
}

func readMultipolygon(path string) (sweep.Multipolygon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var mp sweep.Multipolygon
	if err := json.Unmarshal(b, &mp); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return mp, nil
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
