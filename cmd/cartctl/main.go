package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	grpccart "github.com/murkotick/storefront-cart-service/internal/transport/grpc/cart"
)

// cartctl talks to a running cart service over gRPC.
//
//	cartctl --user u1 add --id p1 --name Mug --price 9.99
//	cartctl --user u1 set p1 5
//	cartctl --user u1 get
func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:  "cartctl",
		Usage: "inspect and change carts on a cart service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   "localhost:50051",
				Usage:   "cart service gRPC address",
				EnvVars: []string{"CART_GRPC_ADDR"},
			},
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "user id the cart belongs to",
				EnvVars: []string{"CART_USER_ID"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 5 * time.Second,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "print the cart",
				Action: withClient(out, func(ctx context.Context, c *grpccart.Client, cc *cli.Context) (*structpb.Struct, error) {
					return c.GetCart(ctx, cc.String("user"))
				}),
			},
			{
				Name:  "add",
				Usage: "add one unit of a product",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "price", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "image"},
					&cli.StringFlag{Name: "category"},
				},
				Action: withClient(out, func(ctx context.Context, c *grpccart.Client, cc *cli.Context) (*structpb.Struct, error) {
					return c.AddToCart(ctx, cc.String("user"), map[string]interface{}{
						"product_id":  cc.String("id"),
						"name":        cc.String("name"),
						"price":       cc.String("price"),
						"description": cc.String("description"),
						"image_url":   cc.String("image"),
						"category":    cc.String("category"),
					})
				}),
			},
			{
				Name:      "set",
				Usage:     "set the quantity of a line (0 removes it)",
				ArgsUsage: "<product-id> <quantity>",
				Action: withClient(out, func(ctx context.Context, c *grpccart.Client, cc *cli.Context) (*structpb.Struct, error) {
					if cc.NArg() != 2 {
						return nil, fmt.Errorf("usage: set <product-id> <quantity>")
					}
					var qty int
					if _, err := fmt.Sscanf(cc.Args().Get(1), "%d", &qty); err != nil {
						return nil, fmt.Errorf("quantity must be a whole number: %w", err)
					}
					return c.SetQuantity(ctx, cc.String("user"), cc.Args().Get(0), qty)
				}),
			},
			{
				Name:      "remove",
				Usage:     "remove a line",
				ArgsUsage: "<product-id>",
				Action: withClient(out, func(ctx context.Context, c *grpccart.Client, cc *cli.Context) (*structpb.Struct, error) {
					if cc.NArg() != 1 {
						return nil, fmt.Errorf("usage: remove <product-id>")
					}
					return c.RemoveFromCart(ctx, cc.String("user"), cc.Args().First())
				}),
			},
			{
				Name:  "checkout",
				Usage: "place the order and empty the cart",
				Action: withClient(out, func(ctx context.Context, c *grpccart.Client, cc *cli.Context) (*structpb.Struct, error) {
					return c.Checkout(ctx, cc.String("user"))
				}),
			},
		},
	}
}

type call func(ctx context.Context, c *grpccart.Client, cc *cli.Context) (*structpb.Struct, error)

func withClient(out io.Writer, fn call) cli.ActionFunc {
	return func(cc *cli.Context) error {
		conn, err := grpc.NewClient(cc.String("addr"), grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("dial %s: %w", cc.String("addr"), err)
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(cc.Context, cc.Duration("timeout"))
		defer cancel()

		reply, err := fn(ctx, grpccart.NewClient(conn), cc)
		if err != nil {
			return err
		}
		return printReply(out, reply)
	}
}

func printReply(out io.Writer, reply *structpb.Struct) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(reply)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
