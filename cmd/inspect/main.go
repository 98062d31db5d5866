package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/process"

	"mongolshop/domain"
)

// Offline store viewer: dumps the three JSON slots of a shop database
// without disturbing a running shop process.
type config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	ShowStats      bool   `envconfig:"SHOW_STATS" default:"true"`
}

func main() {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// BypassLockGuard allows opening while the shop holds the lock.
	opts := badger.DefaultOptions(cfg.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "ID", "Detail"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				for _, row := range decodeRows(key, v) {
					table.Append(row)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()

	if cfg.ShowStats {
		printProcessStats()
	}
}

// decodeRows expands a stored value into display rows; unknown keys get
// a single raw row so nothing in the store is invisible.
func decodeRows(key string, val []byte) [][]string {
	switch key {
	case "products":
		var products []domain.Product
		if err := json.Unmarshal(val, &products); err != nil {
			return [][]string{{key, "ERROR", "", err.Error()}}
		}
		rows := make([][]string, 0, len(products))
		for _, p := range products {
			rows = append(rows, []string{
				key, "PRODUCT", p.ID,
				fmt.Sprintf("%s — %d₮ (%s)", p.Name, p.Price, p.Category),
			})
		}
		return rows
	case "current-user":
		var user domain.User
		if err := json.Unmarshal(val, &user); err != nil {
			return [][]string{{key, "ERROR", "", err.Error()}}
		}
		return [][]string{{key, "USER", user.ID, fmt.Sprintf("%s <%s> %s", user.Name, user.Email, user.Role)}}
	case "cart":
		var cart domain.Cart
		if err := json.Unmarshal(val, &cart); err != nil {
			return [][]string{{key, "ERROR", "", err.Error()}}
		}
		rows := make([][]string, 0, len(cart.Lines)+1)
		for _, line := range cart.Lines {
			rows = append(rows, []string{
				key, "LINE", line.Product.ID,
				fmt.Sprintf("%s x%d", line.Product.Name, line.Quantity),
			})
		}
		rows = append(rows, []string{key, "TOTAL", "", strconv.FormatInt(cart.Total(), 10) + "₮"})
		return rows
	default:
		detail := string(val)
		if len(detail) > 80 {
			detail = detail[:80] + "..."
		}
		return [][]string{{key, "RAW", "", detail}}
	}
}

func printProcessStats() {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return
	}
	fmt.Printf("\nViewer RSS: %d MiB\n", mem.RSS/1024/1024)
}
