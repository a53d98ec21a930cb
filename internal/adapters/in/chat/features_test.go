package chat_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"

	"orderbot/internal/adapters/in/chat"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"

	"github.com/cucumber/godog"
)

type conversationTestContext struct {
	catalog   catalog.Catalog
	directory customer.Directory
	bot       *botStack
	reply     string
}

func (c *conversationTestContext) reset() {
	c.catalog = catalog.NewCatalog()
	c.directory = customer.NewDirectory()
	c.bot = nil
	c.reply = ""
}

// stack builds the bot lazily so Background tables are loaded first.
func (c *conversationTestContext) stack() *botStack {
	if c.bot == nil {
		c.bot = newBotStack(c.catalog, c.directory)
	}
	return c.bot
}

func (c *conversationTestContext) theCatalogContains(table *godog.Table) error {
	priceColumns := []kernel.Size{kernel.SizeWhole, kernel.SizeHalf, kernel.SizeQuarter}

	var entries []catalog.Entry
	for _, row := range table.Rows[1:] {
		prices := make(map[kernel.Size]int64)
		for i, size := range priceColumns {
			raw := row.Cells[2+i].Value
			if raw == "" {
				continue
			}
			price, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return err
			}
			prices[size] = price
		}

		entry, err := catalog.NewEntry(row.Cells[0].Value, row.Cells[1].Value, prices)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	c.catalog = catalog.NewCatalog(entries...)
	return nil
}

func (c *conversationTestContext) theCustomerDirectoryContains(table *godog.Table) error {
	var records []customer.Record
	for _, row := range table.Rows[1:] {
		rec, err := customer.NewRecord(
			row.Cells[0].Value,
			row.Cells[1].Value,
			strings.ReplaceAll(row.Cells[2].Value, `\n`, "\n"),
			row.Cells[3].Value == "1",
		)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	c.directory = customer.NewDirectory(records...)
	return nil
}

func (c *conversationTestContext) userSends(userID, text string) error {
	reply, err := c.stack().controller.Handle(context.Background(), userID, text)
	if err != nil {
		return err
	}
	c.reply = reply
	return nil
}

func (c *conversationTestContext) userHasStartedAnOrderFor(userID, name string) error {
	if err := c.userSends(userID, "/start"); err != nil {
		return err
	}
	return c.userSends(userID, name)
}

func (c *conversationTestContext) theBotRepliesText(expected string) error {
	if c.reply != expected {
		return fmt.Errorf("expected reply %q, got %q", expected, c.reply)
	}
	return nil
}

// theBotRepliesDoc ignores the final line break, which doc strings cannot express.
func (c *conversationTestContext) theBotRepliesDoc(doc *godog.DocString) error {
	if got := strings.TrimSuffix(c.reply, "\n"); got != doc.Content {
		return fmt.Errorf("expected reply %q, got %q", doc.Content, got)
	}
	return nil
}

func (c *conversationTestContext) theBotStaysSilent() error {
	if c.reply != "" {
		return fmt.Errorf("expected no reply, got %q", c.reply)
	}
	return nil
}

func (c *conversationTestContext) theConversationOfUserIs(userID, state string) error {
	want := map[string]chat.State{
		"idle":             chat.StateIdle,
		"awaiting a name":  chat.StateAwaitingCustomerName,
		"awaiting an item": chat.StateAwaitingItem,
	}[state]

	if got := c.stack().controller.State(userID); got != want {
		return fmt.Errorf("expected state %s, got %s", want, got)
	}
	return nil
}

func (c *conversationTestContext) isRecordedAsANewCustomer(name string) error {
	if !slices.Contains(c.stack().newCustomers.Names(), name) {
		return fmt.Errorf("%q was not recorded, got %v", name, c.stack().newCustomers.Names())
	}
	return nil
}

func (c *conversationTestContext) noNewCustomerIsRecorded() error {
	if names := c.stack().newCustomers.Names(); len(names) > 0 {
		return errors.New("unexpected new customers: " + strings.Join(names, ", "))
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &conversationTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the catalog contains:$`, tc.theCatalogContains)
	ctx.Step(`^the customer directory contains:$`, tc.theCustomerDirectoryContains)
	ctx.Step(`^user "([^"]*)" has started an order for "([^"]*)"$`, tc.userHasStartedAnOrderFor)

	// When steps
	ctx.Step(`^user "([^"]*)" sends "([^"]*)"$`, tc.userSends)

	// Then steps
	ctx.Step(`^the bot replies "([^"]*)"$`, tc.theBotRepliesText)
	ctx.Step(`^the bot replies:$`, tc.theBotRepliesDoc)
	ctx.Step(`^the bot stays silent$`, tc.theBotStaysSilent)
	ctx.Step(`^the conversation of user "([^"]*)" is (idle|awaiting a name|awaiting an item)$`, tc.theConversationOfUserIs)
	ctx.Step(`^"([^"]*)" is recorded as a new customer$`, tc.isRecordedAsANewCustomer)
	ctx.Step(`^no new customer is recorded$`, tc.noNewCustomerIsRecorded)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
