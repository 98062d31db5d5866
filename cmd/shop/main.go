package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"mongolshop/ai"
	"mongolshop/domain"
	"mongolshop/internal"
	"mongolshop/moderation"
	"mongolshop/repositories"
	"mongolshop/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Shop terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := internal.GetLoggerFromString(config.LogLevel)

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Moderation (optional blocklist)
	var moderator *moderation.Moderator
	if config.BlocklistFilepath != "" {
		words, err := loadBlocklist(config.BlocklistFilepath)
		if err != nil {
			return exitConfig, fmt.Errorf("blocklist: %w", err)
		}
		moderator, err = moderation.NewModerator(words, charReplacement)
		if err != nil {
			return exitConfig, fmt.Errorf("blocklist: %w", err)
		}
	}

	// 4. Services
	catalog := services.NewCatalogService(repositories.NewCatalogRepository(db, logger), blugeWriter, logger)
	if err := catalog.ReindexAll(); err != nil {
		return exitRuntime, err
	}
	sessions := services.NewSessionService(repositories.NewSessionRepository(db), config.AuthTokenDuration, logger)
	cart := services.NewCartService(repositories.NewCartRepository(db), logger)
	checkout := services.NewCheckoutService(sessions, cart, services.MockGateway{Delay: config.PaymentDelay}, logger)

	assistant := ai.NewGeminiClient(ai.DefaultBaseURL, config.GeminiAPIKey, config.GeminiModel, config.GeminiTimeout)
	chat := services.NewChatSession(assistant, moderator, logger)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shop := &shell{
		catalog:  catalog,
		sessions: sessions,
		cart:     cart,
		checkout: checkout,
		chat:     chat,
		log:      logger,
	}
	if err := shop.loop(ctx); err != nil {
		return exitRuntime, err
	}

	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

// loadBlocklist reads one banned word per line, skipping blanks and
// '#' comments.
func loadBlocklist(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, nil
}

// shell is the interactive storefront surface over the services.
type shell struct {
	catalog  services.ICatalogService
	sessions services.ISessionService
	cart     services.ICartService
	checkout *services.CheckoutService
	chat     *services.ChatSession
	log      *slog.Logger
}

func (s *shell) loop(ctx context.Context) error {
	color.Cyan.Println("Монгол Шоп — 'help' гэж бичнэ үү.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		color.Green.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		if cmd == "exit" || cmd == "quit" {
			return nil
		}
		if err := s.dispatch(ctx, cmd, rest); err != nil {
			color.Red.Println(err)
		}
	}
}

func (s *shell) dispatch(ctx context.Context, cmd, rest string) error {
	switch cmd {
	case "help":
		printHelp()
		return nil
	case "products":
		products, err := s.catalog.List()
		if err != nil {
			return err
		}
		renderProducts(products)
		return nil
	case "search":
		hits, err := s.catalog.Search(ctx, rest)
		if err != nil {
			return err
		}
		renderProducts(hits)
		return nil
	case "filter":
		products, err := s.catalog.FilterByCategory(domain.Category(rest))
		if err != nil {
			return err
		}
		renderProducts(products)
		return nil
	case "login":
		user, _, err := s.sessions.Login(rest)
		if err != nil {
			return err
		}
		color.Cyan.Printf("Тавтай морил, %s (%s)\n", user.Name, user.Role)
		return nil
	case "logout":
		return s.sessions.Logout()
	case "whoami":
		user, ok, err := s.sessions.Current()
		if err != nil {
			return err
		}
		if !ok {
			color.Yellow.Println("Нэвтрээгүй байна.")
			return nil
		}
		color.Cyan.Printf("%s <%s> (%s)\n", user.Name, user.Email, user.Role)
		return nil
	case "add":
		return s.addToCart(rest)
	case "rm":
		cart, err := s.cart.RemoveItem(rest)
		if err != nil {
			return err
		}
		renderCart(cart)
		return nil
	case "qty":
		return s.adjustQuantity(rest)
	case "cart":
		cart, err := s.cart.Get()
		if err != nil {
			return err
		}
		renderCart(cart)
		return nil
	case "clearcart":
		_, err := s.cart.Clear()
		return err
	case "checkout":
		reference, amount, err := s.checkout.Begin()
		if err != nil {
			return err
		}
		color.Cyan.Printf("QR: %s — дүн %d₮. 'pay' гэж бичиж баталгаажуулна уу.\n", reference, amount)
		return nil
	case "pay":
		if err := s.checkout.Verify(ctx); err != nil {
			return err
		}
		color.Green.Println("Төлбөр баталгаажлаа. Баярлалаа!")
		return nil
	case "retry":
		if err := s.checkout.Retry(); err != nil {
			return err
		}
		color.Cyan.Println("Дахин оролдоход бэлэн. 'pay' гэж бичнэ үү.")
		return nil
	case "chat":
		if err := s.chat.Send(ctx, rest); err != nil {
			return err
		}
		printLastReply(s.chat.Messages())
		return nil
	case "attach":
		data, err := os.ReadFile(rest)
		if err != nil {
			return err
		}
		attachment := s.chat.AttachImage(data)
		color.Cyan.Printf("Зураг хавсаргалаа (%s, %d bytes)\n", attachment.MediaType, len(attachment.Data))
		return nil
	case "detach":
		s.chat.ClearAttachment()
		return nil
	case "history":
		printTranscript(s.chat.Messages())
		return nil
	case "new":
		return s.adminAdd(rest)
	case "del":
		return s.adminDelete(rest)
	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
}

func (s *shell) addToCart(id string) error {
	products, err := s.catalog.List()
	if err != nil {
		return err
	}
	for _, product := range products {
		if product.ID == id {
			cart, err := s.cart.AddItem(product)
			if err != nil {
				return err
			}
			renderCart(cart)
			return nil
		}
	}
	return fmt.Errorf("no product with id %q", id)
}

func (s *shell) adjustQuantity(rest string) error {
	id, deltaStr, ok := strings.Cut(rest, " ")
	if !ok {
		return fmt.Errorf("usage: qty <product-id> <delta>")
	}
	delta, err := strconv.Atoi(strings.TrimSpace(deltaStr))
	if err != nil {
		return fmt.Errorf("usage: qty <product-id> <delta>")
	}
	cart, err := s.cart.AdjustQuantity(id, delta)
	if err != nil {
		return err
	}
	renderCart(cart)
	return nil
}

// requireAdmin gates the catalog mutations on the admin identity.
func (s *shell) requireAdmin() error {
	user, ok, err := s.sessions.Current()
	if err != nil {
		return err
	}
	if !ok || !user.IsAdmin() {
		return fmt.Errorf("admin login required")
	}
	return nil
}

// adminAdd parses "name|price|category|image|description"; trailing
// fields may be omitted.
func (s *shell) adminAdd(rest string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	fields := strings.Split(rest, "|")
	if len(fields) < 2 {
		return fmt.Errorf("usage: new <name>|<price>[|<category>|<image>|<description>]")
	}
	price, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q", fields[1])
	}

	input := services.ProductInput{Name: strings.TrimSpace(fields[0]), Price: price}
	if len(fields) > 2 {
		input.Category = domain.Category(strings.TrimSpace(fields[2]))
	}
	if len(fields) > 3 {
		input.Image = strings.TrimSpace(fields[3])
	}
	if len(fields) > 4 {
		input.Description = strings.TrimSpace(fields[4])
	}

	products, err := s.catalog.Add(input)
	if err != nil {
		return err
	}
	renderProducts(products)
	return nil
}

func (s *shell) adminDelete(id string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	products, err := s.catalog.Delete(id)
	if err != nil {
		return err
	}
	renderProducts(products)
	return nil
}

func renderProducts(products []domain.Product) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Price", "Category"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, p := range products {
		table.Append([]string{p.ID, p.Name, fmt.Sprintf("%d₮", p.Price), string(p.Category)})
	}
	table.Render()
}

func renderCart(cart domain.Cart) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Qty", "Line total"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, line := range cart.Lines {
		table.Append([]string{
			line.Product.ID,
			line.Product.Name,
			strconv.Itoa(line.Quantity),
			fmt.Sprintf("%d₮", line.Product.Price*int64(line.Quantity)),
		})
	}
	table.Render()
	color.Cyan.Printf("Нийт: %d₮ (%d ширхэг)\n", cart.Total(), cart.ItemCount())
}

func printLastReply(messages []domain.ChatMessage) {
	if len(messages) == 0 {
		return
	}
	last := messages[len(messages)-1]
	if last.Error {
		color.Red.Println(last.Text)
		return
	}
	color.Magenta.Println(last.Text)
}

func printTranscript(messages []domain.ChatMessage) {
	for _, message := range messages {
		prefix := "Та"
		if message.Role == domain.ChatRoleAssistant {
			prefix = "Туслах"
		}
		suffix := ""
		if message.Image != nil {
			suffix = " [зураг]"
		}
		if message.Error {
			suffix += " [алдаа]"
		}
		fmt.Printf("%s: %s%s\n", prefix, message.Text, suffix)
	}
}

func printHelp() {
	fmt.Println(`products                       list the catalog
search <text>                  full-text product search
filter <category>              filter by category shelf
login <email> / logout / whoami
add <id> / rm <id> / qty <id> <delta> / cart / clearcart
checkout / pay / retry         QR payment flow
chat <text> / attach <file> / detach / history
new <name>|<price>[|...]       add a product (admin)
del <id>                       delete a product (admin)
exit`)
}
