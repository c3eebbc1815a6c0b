// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"planora.io/planora/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/accountsettings"
	"planora.io/planora/ent/album"
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/albumtype"
	"planora.io/planora/ent/commchannel"
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/eventguest"
	"planora.io/planora/ent/inappnotification"
	"planora.io/planora/ent/passwordreset"
	"planora.io/planora/ent/thumbnail"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Account is the client for interacting with the Account builders.
	Account *AccountClient
	// AccountSettings is the client for interacting with the AccountSettings builders.
	AccountSettings *AccountSettingsClient
	// Album is the client for interacting with the Album builders.
	Album *AlbumClient
	// AlbumFile is the client for interacting with the AlbumFile builders.
	AlbumFile *AlbumFileClient
	// AlbumType is the client for interacting with the AlbumType builders.
	AlbumType *AlbumTypeClient
	// CommChannel is the client for interacting with the CommChannel builders.
	CommChannel *CommChannelClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// EventGuest is the client for interacting with the EventGuest builders.
	EventGuest *EventGuestClient
	// InAppNotification is the client for interacting with the InAppNotification builders.
	InAppNotification *InAppNotificationClient
	// PasswordReset is the client for interacting with the PasswordReset builders.
	PasswordReset *PasswordResetClient
	// Thumbnail is the client for interacting with the Thumbnail builders.
	Thumbnail *ThumbnailClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Account = NewAccountClient(c.config)
	c.AccountSettings = NewAccountSettingsClient(c.config)
	c.Album = NewAlbumClient(c.config)
	c.AlbumFile = NewAlbumFileClient(c.config)
	c.AlbumType = NewAlbumTypeClient(c.config)
	c.CommChannel = NewCommChannelClient(c.config)
	c.Event = NewEventClient(c.config)
	c.EventGuest = NewEventGuestClient(c.config)
	c.InAppNotification = NewInAppNotificationClient(c.config)
	c.PasswordReset = NewPasswordResetClient(c.config)
	c.Thumbnail = NewThumbnailClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Account:           NewAccountClient(cfg),
		AccountSettings:   NewAccountSettingsClient(cfg),
		Album:             NewAlbumClient(cfg),
		AlbumFile:         NewAlbumFileClient(cfg),
		AlbumType:         NewAlbumTypeClient(cfg),
		CommChannel:       NewCommChannelClient(cfg),
		Event:             NewEventClient(cfg),
		EventGuest:        NewEventGuestClient(cfg),
		InAppNotification: NewInAppNotificationClient(cfg),
		PasswordReset:     NewPasswordResetClient(cfg),
		Thumbnail:         NewThumbnailClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Account:           NewAccountClient(cfg),
		AccountSettings:   NewAccountSettingsClient(cfg),
		Album:             NewAlbumClient(cfg),
		AlbumFile:         NewAlbumFileClient(cfg),
		AlbumType:         NewAlbumTypeClient(cfg),
		CommChannel:       NewCommChannelClient(cfg),
		Event:             NewEventClient(cfg),
		EventGuest:        NewEventGuestClient(cfg),
		InAppNotification: NewInAppNotificationClient(cfg),
		PasswordReset:     NewPasswordResetClient(cfg),
		Thumbnail:         NewThumbnailClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Account.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Account, c.AccountSettings, c.Album, c.AlbumFile, c.AlbumType, c.CommChannel,
		c.Event, c.EventGuest, c.InAppNotification, c.PasswordReset, c.Thumbnail,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Account, c.AccountSettings, c.Album, c.AlbumFile, c.AlbumType, c.CommChannel,
		c.Event, c.EventGuest, c.InAppNotification, c.PasswordReset, c.Thumbnail,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AccountMutation:
		return c.Account.mutate(ctx, m)
	case *AccountSettingsMutation:
		return c.AccountSettings.mutate(ctx, m)
	case *AlbumMutation:
		return c.Album.mutate(ctx, m)
	case *AlbumFileMutation:
		return c.AlbumFile.mutate(ctx, m)
	case *AlbumTypeMutation:
		return c.AlbumType.mutate(ctx, m)
	case *CommChannelMutation:
		return c.CommChannel.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *EventGuestMutation:
		return c.EventGuest.mutate(ctx, m)
	case *InAppNotificationMutation:
		return c.InAppNotification.mutate(ctx, m)
	case *PasswordResetMutation:
		return c.PasswordReset.mutate(ctx, m)
	case *ThumbnailMutation:
		return c.Thumbnail.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AccountClient is a client for the Account schema.
type AccountClient struct {
	config
}

// NewAccountClient returns a client for the Account from the given config.
func NewAccountClient(c config) *AccountClient {
	return &AccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `account.Hooks(f(g(h())))`.
func (c *AccountClient) Use(hooks ...Hook) {
	c.hooks.Account = append(c.hooks.Account, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `account.Intercept(f(g(h())))`.
func (c *AccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.Account = append(c.inters.Account, interceptors...)
}

// Create returns a builder for creating a Account entity.
func (c *AccountClient) Create() *AccountCreate {
	mutation := newAccountMutation(c.config, OpCreate)
	return &AccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Account entities.
func (c *AccountClient) CreateBulk(builders ...*AccountCreate) *AccountCreateBulk {
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccountClient) MapCreateBulk(slice any, setFunc func(*AccountCreate, int)) *AccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccountCreateBulk{err: fmt.Errorf("calling to AccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Account.
func (c *AccountClient) Update() *AccountUpdate {
	mutation := newAccountMutation(c.config, OpUpdate)
	return &AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccountClient) UpdateOne(_m *Account) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccount(_m))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccountClient) UpdateOneID(id string) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccountID(id))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Account.
func (c *AccountClient) Delete() *AccountDelete {
	mutation := newAccountMutation(c.config, OpDelete)
	return &AccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccountClient) DeleteOne(_m *Account) *AccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccountClient) DeleteOneID(id string) *AccountDeleteOne {
	builder := c.Delete().Where(account.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccountDeleteOne{builder}
}

// Query returns a query builder for Account.
func (c *AccountClient) Query() *AccountQuery {
	return &AccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a Account entity by its id.
func (c *AccountClient) Get(ctx context.Context, id string) (*Account, error) {
	return c.Query().Where(account.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccountClient) GetX(ctx context.Context, id string) *Account {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySettings queries the settings edge of a Account.
func (c *AccountClient) QuerySettings(_m *Account) *AccountSettingsQuery {
	query := (&AccountSettingsClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(accountsettings.Table, accountsettings.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, account.SettingsTable, account.SettingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Account.
func (c *AccountClient) QueryEvents(_m *Account) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.EventsTable, account.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGuestEntries queries the guest_entries edge of a Account.
func (c *AccountClient) QueryGuestEntries(_m *Account) *EventGuestQuery {
	query := (&EventGuestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(eventguest.Table, eventguest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.GuestEntriesTable, account.GuestEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlbums queries the albums edge of a Account.
func (c *AccountClient) QueryAlbums(_m *Account) *AlbumQuery {
	query := (&AlbumClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(album.Table, album.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.AlbumsTable, account.AlbumsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlbumFiles queries the album_files edge of a Account.
func (c *AccountClient) QueryAlbumFiles(_m *Account) *AlbumFileQuery {
	query := (&AlbumFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(albumfile.Table, albumfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.AlbumFilesTable, account.AlbumFilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySentNotifications queries the sent_notifications edge of a Account.
func (c *AccountClient) QuerySentNotifications(_m *Account) *InAppNotificationQuery {
	query := (&InAppNotificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(inappnotification.Table, inappnotification.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.SentNotificationsTable, account.SentNotificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReceivedNotifications queries the received_notifications edge of a Account.
func (c *AccountClient) QueryReceivedNotifications(_m *Account) *InAppNotificationQuery {
	query := (&InAppNotificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(inappnotification.Table, inappnotification.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.ReceivedNotificationsTable, account.ReceivedNotificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPasswordResets queries the password_resets edge of a Account.
func (c *AccountClient) QueryPasswordResets(_m *Account) *PasswordResetQuery {
	query := (&PasswordResetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(passwordreset.Table, passwordreset.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.PasswordResetsTable, account.PasswordResetsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommChannels queries the comm_channels edge of a Account.
func (c *AccountClient) QueryCommChannels(_m *Account) *CommChannelQuery {
	query := (&CommChannelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(commchannel.Table, commchannel.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.CommChannelsTable, account.CommChannelsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AccountClient) Hooks() []Hook {
	return c.hooks.Account
}

// Interceptors returns the client interceptors.
func (c *AccountClient) Interceptors() []Interceptor {
	return c.inters.Account
}

func (c *AccountClient) mutate(ctx context.Context, m *AccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Account mutation op: %q", m.Op())
	}
}

// AccountSettingsClient is a client for the AccountSettings schema.
type AccountSettingsClient struct {
	config
}

// NewAccountSettingsClient returns a client for the AccountSettings from the given config.
func NewAccountSettingsClient(c config) *AccountSettingsClient {
	return &AccountSettingsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `accountsettings.Hooks(f(g(h())))`.
func (c *AccountSettingsClient) Use(hooks ...Hook) {
	c.hooks.AccountSettings = append(c.hooks.AccountSettings, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `accountsettings.Intercept(f(g(h())))`.
func (c *AccountSettingsClient) Intercept(interceptors ...Interceptor) {
	c.inters.AccountSettings = append(c.inters.AccountSettings, interceptors...)
}

// Create returns a builder for creating a AccountSettings entity.
func (c *AccountSettingsClient) Create() *AccountSettingsCreate {
	mutation := newAccountSettingsMutation(c.config, OpCreate)
	return &AccountSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AccountSettings entities.
func (c *AccountSettingsClient) CreateBulk(builders ...*AccountSettingsCreate) *AccountSettingsCreateBulk {
	return &AccountSettingsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccountSettingsClient) MapCreateBulk(slice any, setFunc func(*AccountSettingsCreate, int)) *AccountSettingsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccountSettingsCreateBulk{err: fmt.Errorf("calling to AccountSettingsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccountSettingsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccountSettingsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AccountSettings.
func (c *AccountSettingsClient) Update() *AccountSettingsUpdate {
	mutation := newAccountSettingsMutation(c.config, OpUpdate)
	return &AccountSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccountSettingsClient) UpdateOne(_m *AccountSettings) *AccountSettingsUpdateOne {
	mutation := newAccountSettingsMutation(c.config, OpUpdateOne, withAccountSettings(_m))
	return &AccountSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccountSettingsClient) UpdateOneID(id string) *AccountSettingsUpdateOne {
	mutation := newAccountSettingsMutation(c.config, OpUpdateOne, withAccountSettingsID(id))
	return &AccountSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AccountSettings.
func (c *AccountSettingsClient) Delete() *AccountSettingsDelete {
	mutation := newAccountSettingsMutation(c.config, OpDelete)
	return &AccountSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccountSettingsClient) DeleteOne(_m *AccountSettings) *AccountSettingsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccountSettingsClient) DeleteOneID(id string) *AccountSettingsDeleteOne {
	builder := c.Delete().Where(accountsettings.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccountSettingsDeleteOne{builder}
}

// Query returns a query builder for AccountSettings.
func (c *AccountSettingsClient) Query() *AccountSettingsQuery {
	return &AccountSettingsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccountSettings},
		inters: c.Interceptors(),
	}
}

// Get returns a AccountSettings entity by its id.
func (c *AccountSettingsClient) Get(ctx context.Context, id string) (*AccountSettings, error) {
	return c.Query().Where(accountsettings.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccountSettingsClient) GetX(ctx context.Context, id string) *AccountSettings {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccount queries the account edge of a AccountSettings.
func (c *AccountSettingsClient) QueryAccount(_m *AccountSettings) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(accountsettings.Table, accountsettings.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, accountsettings.AccountTable, accountsettings.AccountColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AccountSettingsClient) Hooks() []Hook {
	return c.hooks.AccountSettings
}

// Interceptors returns the client interceptors.
func (c *AccountSettingsClient) Interceptors() []Interceptor {
	return c.inters.AccountSettings
}

func (c *AccountSettingsClient) mutate(ctx context.Context, m *AccountSettingsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccountSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccountSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccountSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccountSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AccountSettings mutation op: %q", m.Op())
	}
}

// AlbumClient is a client for the Album schema.
type AlbumClient struct {
	config
}

// NewAlbumClient returns a client for the Album from the given config.
func NewAlbumClient(c config) *AlbumClient {
	return &AlbumClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `album.Hooks(f(g(h())))`.
func (c *AlbumClient) Use(hooks ...Hook) {
	c.hooks.Album = append(c.hooks.Album, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `album.Intercept(f(g(h())))`.
func (c *AlbumClient) Intercept(interceptors ...Interceptor) {
	c.inters.Album = append(c.inters.Album, interceptors...)
}

// Create returns a builder for creating a Album entity.
func (c *AlbumClient) Create() *AlbumCreate {
	mutation := newAlbumMutation(c.config, OpCreate)
	return &AlbumCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Album entities.
func (c *AlbumClient) CreateBulk(builders ...*AlbumCreate) *AlbumCreateBulk {
	return &AlbumCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlbumClient) MapCreateBulk(slice any, setFunc func(*AlbumCreate, int)) *AlbumCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlbumCreateBulk{err: fmt.Errorf("calling to AlbumClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlbumCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlbumCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Album.
func (c *AlbumClient) Update() *AlbumUpdate {
	mutation := newAlbumMutation(c.config, OpUpdate)
	return &AlbumUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlbumClient) UpdateOne(_m *Album) *AlbumUpdateOne {
	mutation := newAlbumMutation(c.config, OpUpdateOne, withAlbum(_m))
	return &AlbumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlbumClient) UpdateOneID(id string) *AlbumUpdateOne {
	mutation := newAlbumMutation(c.config, OpUpdateOne, withAlbumID(id))
	return &AlbumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Album.
func (c *AlbumClient) Delete() *AlbumDelete {
	mutation := newAlbumMutation(c.config, OpDelete)
	return &AlbumDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlbumClient) DeleteOne(_m *Album) *AlbumDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlbumClient) DeleteOneID(id string) *AlbumDeleteOne {
	builder := c.Delete().Where(album.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlbumDeleteOne{builder}
}

// Query returns a query builder for Album.
func (c *AlbumClient) Query() *AlbumQuery {
	return &AlbumQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlbum},
		inters: c.Interceptors(),
	}
}

// Get returns a Album entity by its id.
func (c *AlbumClient) Get(ctx context.Context, id string) (*Album, error) {
	return c.Query().Where(album.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlbumClient) GetX(ctx context.Context, id string) *Album {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Album.
func (c *AlbumClient) QueryOwner(_m *Album) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(album.Table, album.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, album.OwnerTable, album.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvent queries the event edge of a Album.
func (c *AlbumClient) QueryEvent(_m *Album) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(album.Table, album.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, album.EventTable, album.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlbumType queries the album_type edge of a Album.
func (c *AlbumClient) QueryAlbumType(_m *Album) *AlbumTypeQuery {
	query := (&AlbumTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(album.Table, album.FieldID, id),
			sqlgraph.To(albumtype.Table, albumtype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, album.AlbumTypeTable, album.AlbumTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a Album.
func (c *AlbumClient) QueryFiles(_m *Album) *AlbumFileQuery {
	query := (&AlbumFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(album.Table, album.FieldID, id),
			sqlgraph.To(albumfile.Table, albumfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, album.FilesTable, album.FilesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlbumClient) Hooks() []Hook {
	return c.hooks.Album
}

// Interceptors returns the client interceptors.
func (c *AlbumClient) Interceptors() []Interceptor {
	return c.inters.Album
}

func (c *AlbumClient) mutate(ctx context.Context, m *AlbumMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlbumCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlbumUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlbumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlbumDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Album mutation op: %q", m.Op())
	}
}

// AlbumFileClient is a client for the AlbumFile schema.
type AlbumFileClient struct {
	config
}

// NewAlbumFileClient returns a client for the AlbumFile from the given config.
func NewAlbumFileClient(c config) *AlbumFileClient {
	return &AlbumFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `albumfile.Hooks(f(g(h())))`.
func (c *AlbumFileClient) Use(hooks ...Hook) {
	c.hooks.AlbumFile = append(c.hooks.AlbumFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `albumfile.Intercept(f(g(h())))`.
func (c *AlbumFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.AlbumFile = append(c.inters.AlbumFile, interceptors...)
}

// Create returns a builder for creating a AlbumFile entity.
func (c *AlbumFileClient) Create() *AlbumFileCreate {
	mutation := newAlbumFileMutation(c.config, OpCreate)
	return &AlbumFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AlbumFile entities.
func (c *AlbumFileClient) CreateBulk(builders ...*AlbumFileCreate) *AlbumFileCreateBulk {
	return &AlbumFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlbumFileClient) MapCreateBulk(slice any, setFunc func(*AlbumFileCreate, int)) *AlbumFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlbumFileCreateBulk{err: fmt.Errorf("calling to AlbumFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlbumFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlbumFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AlbumFile.
func (c *AlbumFileClient) Update() *AlbumFileUpdate {
	mutation := newAlbumFileMutation(c.config, OpUpdate)
	return &AlbumFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlbumFileClient) UpdateOne(_m *AlbumFile) *AlbumFileUpdateOne {
	mutation := newAlbumFileMutation(c.config, OpUpdateOne, withAlbumFile(_m))
	return &AlbumFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlbumFileClient) UpdateOneID(id string) *AlbumFileUpdateOne {
	mutation := newAlbumFileMutation(c.config, OpUpdateOne, withAlbumFileID(id))
	return &AlbumFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AlbumFile.
func (c *AlbumFileClient) Delete() *AlbumFileDelete {
	mutation := newAlbumFileMutation(c.config, OpDelete)
	return &AlbumFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlbumFileClient) DeleteOne(_m *AlbumFile) *AlbumFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlbumFileClient) DeleteOneID(id string) *AlbumFileDeleteOne {
	builder := c.Delete().Where(albumfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlbumFileDeleteOne{builder}
}

// Query returns a query builder for AlbumFile.
func (c *AlbumFileClient) Query() *AlbumFileQuery {
	return &AlbumFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlbumFile},
		inters: c.Interceptors(),
	}
}

// Get returns a AlbumFile entity by its id.
func (c *AlbumFileClient) Get(ctx context.Context, id string) (*AlbumFile, error) {
	return c.Query().Where(albumfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlbumFileClient) GetX(ctx context.Context, id string) *AlbumFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a AlbumFile.
func (c *AlbumFileClient) QueryOwner(_m *AlbumFile) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(albumfile.Table, albumfile.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, albumfile.OwnerTable, albumfile.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlbums queries the albums edge of a AlbumFile.
func (c *AlbumFileClient) QueryAlbums(_m *AlbumFile) *AlbumQuery {
	query := (&AlbumClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(albumfile.Table, albumfile.FieldID, id),
			sqlgraph.To(album.Table, album.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, albumfile.AlbumsTable, albumfile.AlbumsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryThumbnails queries the thumbnails edge of a AlbumFile.
func (c *AlbumFileClient) QueryThumbnails(_m *AlbumFile) *ThumbnailQuery {
	query := (&ThumbnailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(albumfile.Table, albumfile.FieldID, id),
			sqlgraph.To(thumbnail.Table, thumbnail.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, albumfile.ThumbnailsTable, albumfile.ThumbnailsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlbumFileClient) Hooks() []Hook {
	return c.hooks.AlbumFile
}

// Interceptors returns the client interceptors.
func (c *AlbumFileClient) Interceptors() []Interceptor {
	return c.inters.AlbumFile
}

func (c *AlbumFileClient) mutate(ctx context.Context, m *AlbumFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlbumFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlbumFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlbumFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlbumFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AlbumFile mutation op: %q", m.Op())
	}
}

// AlbumTypeClient is a client for the AlbumType schema.
type AlbumTypeClient struct {
	config
}

// NewAlbumTypeClient returns a client for the AlbumType from the given config.
func NewAlbumTypeClient(c config) *AlbumTypeClient {
	return &AlbumTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `albumtype.Hooks(f(g(h())))`.
func (c *AlbumTypeClient) Use(hooks ...Hook) {
	c.hooks.AlbumType = append(c.hooks.AlbumType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `albumtype.Intercept(f(g(h())))`.
func (c *AlbumTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.AlbumType = append(c.inters.AlbumType, interceptors...)
}

// Create returns a builder for creating a AlbumType entity.
func (c *AlbumTypeClient) Create() *AlbumTypeCreate {
	mutation := newAlbumTypeMutation(c.config, OpCreate)
	return &AlbumTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AlbumType entities.
func (c *AlbumTypeClient) CreateBulk(builders ...*AlbumTypeCreate) *AlbumTypeCreateBulk {
	return &AlbumTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlbumTypeClient) MapCreateBulk(slice any, setFunc func(*AlbumTypeCreate, int)) *AlbumTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlbumTypeCreateBulk{err: fmt.Errorf("calling to AlbumTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlbumTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlbumTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AlbumType.
func (c *AlbumTypeClient) Update() *AlbumTypeUpdate {
	mutation := newAlbumTypeMutation(c.config, OpUpdate)
	return &AlbumTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlbumTypeClient) UpdateOne(_m *AlbumType) *AlbumTypeUpdateOne {
	mutation := newAlbumTypeMutation(c.config, OpUpdateOne, withAlbumType(_m))
	return &AlbumTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlbumTypeClient) UpdateOneID(id int) *AlbumTypeUpdateOne {
	mutation := newAlbumTypeMutation(c.config, OpUpdateOne, withAlbumTypeID(id))
	return &AlbumTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AlbumType.
func (c *AlbumTypeClient) Delete() *AlbumTypeDelete {
	mutation := newAlbumTypeMutation(c.config, OpDelete)
	return &AlbumTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlbumTypeClient) DeleteOne(_m *AlbumType) *AlbumTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlbumTypeClient) DeleteOneID(id int) *AlbumTypeDeleteOne {
	builder := c.Delete().Where(albumtype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlbumTypeDeleteOne{builder}
}

// Query returns a query builder for AlbumType.
func (c *AlbumTypeClient) Query() *AlbumTypeQuery {
	return &AlbumTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlbumType},
		inters: c.Interceptors(),
	}
}

// Get returns a AlbumType entity by its id.
func (c *AlbumTypeClient) Get(ctx context.Context, id int) (*AlbumType, error) {
	return c.Query().Where(albumtype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlbumTypeClient) GetX(ctx context.Context, id int) *AlbumType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAlbums queries the albums edge of a AlbumType.
func (c *AlbumTypeClient) QueryAlbums(_m *AlbumType) *AlbumQuery {
	query := (&AlbumClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(albumtype.Table, albumtype.FieldID, id),
			sqlgraph.To(album.Table, album.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, albumtype.AlbumsTable, albumtype.AlbumsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlbumTypeClient) Hooks() []Hook {
	return c.hooks.AlbumType
}

// Interceptors returns the client interceptors.
func (c *AlbumTypeClient) Interceptors() []Interceptor {
	return c.inters.AlbumType
}

func (c *AlbumTypeClient) mutate(ctx context.Context, m *AlbumTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlbumTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlbumTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlbumTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlbumTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AlbumType mutation op: %q", m.Op())
	}
}

// CommChannelClient is a client for the CommChannel schema.
type CommChannelClient struct {
	config
}

// NewCommChannelClient returns a client for the CommChannel from the given config.
func NewCommChannelClient(c config) *CommChannelClient {
	return &CommChannelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commchannel.Hooks(f(g(h())))`.
func (c *CommChannelClient) Use(hooks ...Hook) {
	c.hooks.CommChannel = append(c.hooks.CommChannel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commchannel.Intercept(f(g(h())))`.
func (c *CommChannelClient) Intercept(interceptors ...Interceptor) {
	c.inters.CommChannel = append(c.inters.CommChannel, interceptors...)
}

// Create returns a builder for creating a CommChannel entity.
func (c *CommChannelClient) Create() *CommChannelCreate {
	mutation := newCommChannelMutation(c.config, OpCreate)
	return &CommChannelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CommChannel entities.
func (c *CommChannelClient) CreateBulk(builders ...*CommChannelCreate) *CommChannelCreateBulk {
	return &CommChannelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommChannelClient) MapCreateBulk(slice any, setFunc func(*CommChannelCreate, int)) *CommChannelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommChannelCreateBulk{err: fmt.Errorf("calling to CommChannelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommChannelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommChannelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CommChannel.
func (c *CommChannelClient) Update() *CommChannelUpdate {
	mutation := newCommChannelMutation(c.config, OpUpdate)
	return &CommChannelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommChannelClient) UpdateOne(_m *CommChannel) *CommChannelUpdateOne {
	mutation := newCommChannelMutation(c.config, OpUpdateOne, withCommChannel(_m))
	return &CommChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommChannelClient) UpdateOneID(id string) *CommChannelUpdateOne {
	mutation := newCommChannelMutation(c.config, OpUpdateOne, withCommChannelID(id))
	return &CommChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CommChannel.
func (c *CommChannelClient) Delete() *CommChannelDelete {
	mutation := newCommChannelMutation(c.config, OpDelete)
	return &CommChannelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommChannelClient) DeleteOne(_m *CommChannel) *CommChannelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommChannelClient) DeleteOneID(id string) *CommChannelDeleteOne {
	builder := c.Delete().Where(commchannel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommChannelDeleteOne{builder}
}

// Query returns a query builder for CommChannel.
func (c *CommChannelClient) Query() *CommChannelQuery {
	return &CommChannelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommChannel},
		inters: c.Interceptors(),
	}
}

// Get returns a CommChannel entity by its id.
func (c *CommChannelClient) Get(ctx context.Context, id string) (*CommChannel, error) {
	return c.Query().Where(commchannel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommChannelClient) GetX(ctx context.Context, id string) *CommChannel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccount queries the account edge of a CommChannel.
func (c *CommChannelClient) QueryAccount(_m *CommChannel) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commchannel.Table, commchannel.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commchannel.AccountTable, commchannel.AccountColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommChannelClient) Hooks() []Hook {
	return c.hooks.CommChannel
}

// Interceptors returns the client interceptors.
func (c *CommChannelClient) Interceptors() []Interceptor {
	return c.inters.CommChannel
}

func (c *CommChannelClient) mutate(ctx context.Context, m *CommChannelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommChannelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommChannelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommChannelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CommChannel mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id string) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id string) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id string) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id string) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Event.
func (c *EventClient) QueryOwner(_m *Event) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.OwnerTable, event.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGuests queries the guests edge of a Event.
func (c *EventClient) QueryGuests(_m *Event) *EventGuestQuery {
	query := (&EventGuestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(eventguest.Table, eventguest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.GuestsTable, event.GuestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlbums queries the albums edge of a Event.
func (c *EventClient) QueryAlbums(_m *Event) *AlbumQuery {
	query := (&AlbumClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(album.Table, album.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.AlbumsTable, event.AlbumsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// EventGuestClient is a client for the EventGuest schema.
type EventGuestClient struct {
	config
}

// NewEventGuestClient returns a client for the EventGuest from the given config.
func NewEventGuestClient(c config) *EventGuestClient {
	return &EventGuestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventguest.Hooks(f(g(h())))`.
func (c *EventGuestClient) Use(hooks ...Hook) {
	c.hooks.EventGuest = append(c.hooks.EventGuest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventguest.Intercept(f(g(h())))`.
func (c *EventGuestClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventGuest = append(c.inters.EventGuest, interceptors...)
}

// Create returns a builder for creating a EventGuest entity.
func (c *EventGuestClient) Create() *EventGuestCreate {
	mutation := newEventGuestMutation(c.config, OpCreate)
	return &EventGuestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventGuest entities.
func (c *EventGuestClient) CreateBulk(builders ...*EventGuestCreate) *EventGuestCreateBulk {
	return &EventGuestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventGuestClient) MapCreateBulk(slice any, setFunc func(*EventGuestCreate, int)) *EventGuestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventGuestCreateBulk{err: fmt.Errorf("calling to EventGuestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventGuestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventGuestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventGuest.
func (c *EventGuestClient) Update() *EventGuestUpdate {
	mutation := newEventGuestMutation(c.config, OpUpdate)
	return &EventGuestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventGuestClient) UpdateOne(_m *EventGuest) *EventGuestUpdateOne {
	mutation := newEventGuestMutation(c.config, OpUpdateOne, withEventGuest(_m))
	return &EventGuestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventGuestClient) UpdateOneID(id string) *EventGuestUpdateOne {
	mutation := newEventGuestMutation(c.config, OpUpdateOne, withEventGuestID(id))
	return &EventGuestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventGuest.
func (c *EventGuestClient) Delete() *EventGuestDelete {
	mutation := newEventGuestMutation(c.config, OpDelete)
	return &EventGuestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventGuestClient) DeleteOne(_m *EventGuest) *EventGuestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventGuestClient) DeleteOneID(id string) *EventGuestDeleteOne {
	builder := c.Delete().Where(eventguest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventGuestDeleteOne{builder}
}

// Query returns a query builder for EventGuest.
func (c *EventGuestClient) Query() *EventGuestQuery {
	return &EventGuestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventGuest},
		inters: c.Interceptors(),
	}
}

// Get returns a EventGuest entity by its id.
func (c *EventGuestClient) Get(ctx context.Context, id string) (*EventGuest, error) {
	return c.Query().Where(eventguest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventGuestClient) GetX(ctx context.Context, id string) *EventGuest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a EventGuest.
func (c *EventGuestClient) QueryEvent(_m *EventGuest) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventguest.Table, eventguest.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, eventguest.EventTable, eventguest.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAccount queries the account edge of a EventGuest.
func (c *EventGuestClient) QueryAccount(_m *EventGuest) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventguest.Table, eventguest.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, eventguest.AccountTable, eventguest.AccountColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventGuestClient) Hooks() []Hook {
	return c.hooks.EventGuest
}

// Interceptors returns the client interceptors.
func (c *EventGuestClient) Interceptors() []Interceptor {
	return c.inters.EventGuest
}

func (c *EventGuestClient) mutate(ctx context.Context, m *EventGuestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventGuestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventGuestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventGuestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventGuestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventGuest mutation op: %q", m.Op())
	}
}

// InAppNotificationClient is a client for the InAppNotification schema.
type InAppNotificationClient struct {
	config
}

// NewInAppNotificationClient returns a client for the InAppNotification from the given config.
func NewInAppNotificationClient(c config) *InAppNotificationClient {
	return &InAppNotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inappnotification.Hooks(f(g(h())))`.
func (c *InAppNotificationClient) Use(hooks ...Hook) {
	c.hooks.InAppNotification = append(c.hooks.InAppNotification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inappnotification.Intercept(f(g(h())))`.
func (c *InAppNotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.InAppNotification = append(c.inters.InAppNotification, interceptors...)
}

// Create returns a builder for creating a InAppNotification entity.
func (c *InAppNotificationClient) Create() *InAppNotificationCreate {
	mutation := newInAppNotificationMutation(c.config, OpCreate)
	return &InAppNotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InAppNotification entities.
func (c *InAppNotificationClient) CreateBulk(builders ...*InAppNotificationCreate) *InAppNotificationCreateBulk {
	return &InAppNotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InAppNotificationClient) MapCreateBulk(slice any, setFunc func(*InAppNotificationCreate, int)) *InAppNotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InAppNotificationCreateBulk{err: fmt.Errorf("calling to InAppNotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InAppNotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InAppNotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InAppNotification.
func (c *InAppNotificationClient) Update() *InAppNotificationUpdate {
	mutation := newInAppNotificationMutation(c.config, OpUpdate)
	return &InAppNotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InAppNotificationClient) UpdateOne(_m *InAppNotification) *InAppNotificationUpdateOne {
	mutation := newInAppNotificationMutation(c.config, OpUpdateOne, withInAppNotification(_m))
	return &InAppNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InAppNotificationClient) UpdateOneID(id string) *InAppNotificationUpdateOne {
	mutation := newInAppNotificationMutation(c.config, OpUpdateOne, withInAppNotificationID(id))
	return &InAppNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InAppNotification.
func (c *InAppNotificationClient) Delete() *InAppNotificationDelete {
	mutation := newInAppNotificationMutation(c.config, OpDelete)
	return &InAppNotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InAppNotificationClient) DeleteOne(_m *InAppNotification) *InAppNotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InAppNotificationClient) DeleteOneID(id string) *InAppNotificationDeleteOne {
	builder := c.Delete().Where(inappnotification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InAppNotificationDeleteOne{builder}
}

// Query returns a query builder for InAppNotification.
func (c *InAppNotificationClient) Query() *InAppNotificationQuery {
	return &InAppNotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInAppNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a InAppNotification entity by its id.
func (c *InAppNotificationClient) Get(ctx context.Context, id string) (*InAppNotification, error) {
	return c.Query().Where(inappnotification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InAppNotificationClient) GetX(ctx context.Context, id string) *InAppNotification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySender queries the sender edge of a InAppNotification.
func (c *InAppNotificationClient) QuerySender(_m *InAppNotification) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inappnotification.Table, inappnotification.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inappnotification.SenderTable, inappnotification.SenderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecipient queries the recipient edge of a InAppNotification.
func (c *InAppNotificationClient) QueryRecipient(_m *InAppNotification) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inappnotification.Table, inappnotification.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inappnotification.RecipientTable, inappnotification.RecipientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InAppNotificationClient) Hooks() []Hook {
	return c.hooks.InAppNotification
}

// Interceptors returns the client interceptors.
func (c *InAppNotificationClient) Interceptors() []Interceptor {
	return c.inters.InAppNotification
}

func (c *InAppNotificationClient) mutate(ctx context.Context, m *InAppNotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InAppNotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InAppNotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InAppNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InAppNotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InAppNotification mutation op: %q", m.Op())
	}
}

// PasswordResetClient is a client for the PasswordReset schema.
type PasswordResetClient struct {
	config
}

// NewPasswordResetClient returns a client for the PasswordReset from the given config.
func NewPasswordResetClient(c config) *PasswordResetClient {
	return &PasswordResetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `passwordreset.Hooks(f(g(h())))`.
func (c *PasswordResetClient) Use(hooks ...Hook) {
	c.hooks.PasswordReset = append(c.hooks.PasswordReset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `passwordreset.Intercept(f(g(h())))`.
func (c *PasswordResetClient) Intercept(interceptors ...Interceptor) {
	c.inters.PasswordReset = append(c.inters.PasswordReset, interceptors...)
}

// Create returns a builder for creating a PasswordReset entity.
func (c *PasswordResetClient) Create() *PasswordResetCreate {
	mutation := newPasswordResetMutation(c.config, OpCreate)
	return &PasswordResetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PasswordReset entities.
func (c *PasswordResetClient) CreateBulk(builders ...*PasswordResetCreate) *PasswordResetCreateBulk {
	return &PasswordResetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PasswordResetClient) MapCreateBulk(slice any, setFunc func(*PasswordResetCreate, int)) *PasswordResetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PasswordResetCreateBulk{err: fmt.Errorf("calling to PasswordResetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PasswordResetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PasswordResetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PasswordReset.
func (c *PasswordResetClient) Update() *PasswordResetUpdate {
	mutation := newPasswordResetMutation(c.config, OpUpdate)
	return &PasswordResetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PasswordResetClient) UpdateOne(_m *PasswordReset) *PasswordResetUpdateOne {
	mutation := newPasswordResetMutation(c.config, OpUpdateOne, withPasswordReset(_m))
	return &PasswordResetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PasswordResetClient) UpdateOneID(id string) *PasswordResetUpdateOne {
	mutation := newPasswordResetMutation(c.config, OpUpdateOne, withPasswordResetID(id))
	return &PasswordResetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PasswordReset.
func (c *PasswordResetClient) Delete() *PasswordResetDelete {
	mutation := newPasswordResetMutation(c.config, OpDelete)
	return &PasswordResetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PasswordResetClient) DeleteOne(_m *PasswordReset) *PasswordResetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PasswordResetClient) DeleteOneID(id string) *PasswordResetDeleteOne {
	builder := c.Delete().Where(passwordreset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PasswordResetDeleteOne{builder}
}

// Query returns a query builder for PasswordReset.
func (c *PasswordResetClient) Query() *PasswordResetQuery {
	return &PasswordResetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePasswordReset},
		inters: c.Interceptors(),
	}
}

// Get returns a PasswordReset entity by its id.
func (c *PasswordResetClient) Get(ctx context.Context, id string) (*PasswordReset, error) {
	return c.Query().Where(passwordreset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PasswordResetClient) GetX(ctx context.Context, id string) *PasswordReset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccount queries the account edge of a PasswordReset.
func (c *PasswordResetClient) QueryAccount(_m *PasswordReset) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(passwordreset.Table, passwordreset.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, passwordreset.AccountTable, passwordreset.AccountColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PasswordResetClient) Hooks() []Hook {
	return c.hooks.PasswordReset
}

// Interceptors returns the client interceptors.
func (c *PasswordResetClient) Interceptors() []Interceptor {
	return c.inters.PasswordReset
}

func (c *PasswordResetClient) mutate(ctx context.Context, m *PasswordResetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PasswordResetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PasswordResetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PasswordResetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PasswordResetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PasswordReset mutation op: %q", m.Op())
	}
}

// ThumbnailClient is a client for the Thumbnail schema.
type ThumbnailClient struct {
	config
}

// NewThumbnailClient returns a client for the Thumbnail from the given config.
func NewThumbnailClient(c config) *ThumbnailClient {
	return &ThumbnailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `thumbnail.Hooks(f(g(h())))`.
func (c *ThumbnailClient) Use(hooks ...Hook) {
	c.hooks.Thumbnail = append(c.hooks.Thumbnail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `thumbnail.Intercept(f(g(h())))`.
func (c *ThumbnailClient) Intercept(interceptors ...Interceptor) {
	c.inters.Thumbnail = append(c.inters.Thumbnail, interceptors...)
}

// Create returns a builder for creating a Thumbnail entity.
func (c *ThumbnailClient) Create() *ThumbnailCreate {
	mutation := newThumbnailMutation(c.config, OpCreate)
	return &ThumbnailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Thumbnail entities.
func (c *ThumbnailClient) CreateBulk(builders ...*ThumbnailCreate) *ThumbnailCreateBulk {
	return &ThumbnailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThumbnailClient) MapCreateBulk(slice any, setFunc func(*ThumbnailCreate, int)) *ThumbnailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThumbnailCreateBulk{err: fmt.Errorf("calling to ThumbnailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThumbnailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThumbnailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Thumbnail.
func (c *ThumbnailClient) Update() *ThumbnailUpdate {
	mutation := newThumbnailMutation(c.config, OpUpdate)
	return &ThumbnailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThumbnailClient) UpdateOne(_m *Thumbnail) *ThumbnailUpdateOne {
	mutation := newThumbnailMutation(c.config, OpUpdateOne, withThumbnail(_m))
	return &ThumbnailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThumbnailClient) UpdateOneID(id string) *ThumbnailUpdateOne {
	mutation := newThumbnailMutation(c.config, OpUpdateOne, withThumbnailID(id))
	return &ThumbnailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Thumbnail.
func (c *ThumbnailClient) Delete() *ThumbnailDelete {
	mutation := newThumbnailMutation(c.config, OpDelete)
	return &ThumbnailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThumbnailClient) DeleteOne(_m *Thumbnail) *ThumbnailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThumbnailClient) DeleteOneID(id string) *ThumbnailDeleteOne {
	builder := c.Delete().Where(thumbnail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThumbnailDeleteOne{builder}
}

// Query returns a query builder for Thumbnail.
func (c *ThumbnailClient) Query() *ThumbnailQuery {
	return &ThumbnailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThumbnail},
		inters: c.Interceptors(),
	}
}

// Get returns a Thumbnail entity by its id.
func (c *ThumbnailClient) Get(ctx context.Context, id string) (*Thumbnail, error) {
	return c.Query().Where(thumbnail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThumbnailClient) GetX(ctx context.Context, id string) *Thumbnail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAlbumfile queries the albumfile edge of a Thumbnail.
func (c *ThumbnailClient) QueryAlbumfile(_m *Thumbnail) *AlbumFileQuery {
	query := (&AlbumFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(thumbnail.Table, thumbnail.FieldID, id),
			sqlgraph.To(albumfile.Table, albumfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, thumbnail.AlbumfileTable, thumbnail.AlbumfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ThumbnailClient) Hooks() []Hook {
	return c.hooks.Thumbnail
}

// Interceptors returns the client interceptors.
func (c *ThumbnailClient) Interceptors() []Interceptor {
	return c.inters.Thumbnail
}

func (c *ThumbnailClient) mutate(ctx context.Context, m *ThumbnailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThumbnailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThumbnailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThumbnailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThumbnailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Thumbnail mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Account, AccountSettings, Album, AlbumFile, AlbumType, CommChannel, Event,
		EventGuest, InAppNotification, PasswordReset, Thumbnail []ent.Hook
	}
	inters struct {
		Account, AccountSettings, Album, AlbumFile, AlbumType, CommChannel, Event,
		EventGuest, InAppNotification, PasswordReset, Thumbnail []ent.Interceptor
	}
)
