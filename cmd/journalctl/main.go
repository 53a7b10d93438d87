// journalctl is a small command-line client for the journal API server.
//
// Usage:
//
//	journalctl [-addr URL] [-collection NAME] <command> [args]
//
// Commands:
//
//	list                 print the collection's trades
//	add                  add a trade from the -strategy/-pair/... flags
//	delete <id>          delete a trade by id
//	clear                remove every trade in the collection
//	stats                print the collection's statistics summary
//	target [value]       print or set the daily profit target
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"trade-journal-go/internal/client"
	"trade-journal-go/internal/models"

	"go.uber.org/zap"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "journal server address")
	collection := flag.String("collection", string(models.Dashboard), "collection to operate on")

	form := models.TradeForm{}
	flag.StringVar(&form.Strategy, "strategy", "", "trade strategy label")
	flag.StringVar(&form.Pair, "pair", "", "instrument, e.g. EURUSD")
	flag.StringVar(&form.Type, "type", models.TypeBuy, "buy or sell")
	flag.StringVar(&form.OpenTime, "open-time", "", "calendar date, YYYY-MM-DD")
	flag.StringVar(&form.TradeTime, "trade-time", "", "time of day, HH:mm")
	flag.StringVar(&form.Timeframe, "timeframe", "", "chart timeframe, e.g. m15")
	flag.StringVar(&form.Trend, "trend", "", "up, down or sideways")
	flag.StringVar(&form.LotSize, "lot-size", "", "position size")
	flag.StringVar(&form.WinLoss, "win-loss", "", "win or loss")
	flag.StringVar(&form.NetProfit, "net-profit", "", "signed profit amount")
	flag.StringVar(&form.Balance, "balance", "", "balance snapshot")
	flag.StringVar(&form.Candles, "candles", "", "auxiliary annotation")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	col := models.Collection(*collection)
	if !col.Valid() {
		fail("unknown collection %q, known: %v", *collection, models.Collections())
	}

	c := client.NewClient(*addr, zap.NewNop())

	switch cmd := flag.Arg(0); cmd {
	case "list":
		trades, err := c.ListTrades(col)
		if err != nil {
			fail("%v", err)
		}
		printJSON(trades)

	case "add":
		record, err := c.AddTrade(form, col)
		if err != nil {
			fail("%v", err)
		}
		printJSON(record)

	case "delete":
		if flag.NArg() < 2 {
			fail("delete needs a trade id")
		}
		id, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			fail("invalid trade id %q", flag.Arg(1))
		}
		if err := c.DeleteTrade(id, col); err != nil {
			fail("%v", err)
		}

	case "clear":
		if err := c.ClearTrades(col); err != nil {
			fail("%v", err)
		}

	case "stats":
		stats, err := c.GetStats(col)
		if err != nil {
			fail("%v", err)
		}
		printJSON(stats)

	case "target":
		if flag.NArg() < 2 {
			target, err := c.GetDailyTarget()
			if err != nil {
				fail("%v", err)
			}
			fmt.Println(target)
			return
		}
		v, err := strconv.ParseFloat(flag.Arg(1), 64)
		if err != nil {
			fail("invalid target %q", flag.Arg(1))
		}
		if err := c.SetDailyTarget(v); err != nil {
			fail("%v", err)
		}

	default:
		fail("unknown command %q", cmd)
	}
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail("%v", err)
	}
	fmt.Println(string(b))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
