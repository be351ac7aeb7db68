package constants

import "time"

const (
	// Commands.
	AdminPanelCommandName  = "panel-admin"
	GenPanelCommandName    = "panel-gen"
	TicketPanelCommandName = "panel-ticket"

	// Common.
	DefaultEmbedColor = 0x5865F2
	CodeLength        = 13

	// Admin Panel.
	AdminSetupStatusButtonCustomID   = "admin_setup_status"
	AdminCooldownButtonCustomID      = "admin_cooldown"
	AdminAddServiceButtonCustomID    = "admin_add_service"
	AdminRemoveServiceButtonCustomID = "admin_remove_service"
	AdminEditRestockButtonCustomID   = "admin_edit_restock"
	AdminLogChannelButtonCustomID    = "admin_log_channel"
	AdminConfigRolesButtonCustomID   = "admin_config_roles"
	AdminAddStockButtonCustomID      = "admin_add_stock"
	AdminRemoveStockButtonCustomID   = "admin_remove_stock"
	AdminGiveawayButtonCustomID      = "admin_giveaway"

	// Generator Panel. Service buttons carry the service id as a suffix.
	GenServiceButtonPrefix = "gen_service_"

	// Ticket Panel.
	TicketCreateButtonCustomID     = "ticket_create"
	TicketCloseButtonCustomID      = "ticket_close"
	TicketSubmitCodeButtonCustomID = "ticket_submit_code"

	// Modals. Stock modals carry the service id as a suffix.
	SetupStatusModalCustomID      = "modal_setup_status"
	CooldownModalCustomID         = "modal_cooldown"
	AddServiceModalCustomID       = "modal_add_service"
	EditRestockModalCustomID      = "modal_edit_restock"
	LogChannelModalCustomID       = "modal_log_channel"
	ConfigRolesModalCustomID      = "modal_config_roles"
	AddStockModalPrefix           = "modal_add_stock_"
	RemoveStockModalPrefix        = "modal_remove_stock_"
	SubmitCodeModalCustomID       = "modal_submit_code"
	GiveawaySettingsModalCustomID = "modal_giveaway_settings"

	// Modal inputs.
	StatusTextInputCustomID        = "status_text"
	StatusRoleInputCustomID        = "status_role"
	NormalCooldownInputCustomID    = "normal_cooldown"
	VIPCooldownInputCustomID       = "vip_cooldown"
	NormalGenCooldownInputCustomID = "normal_gen_cooldown"
	VIPGenCooldownInputCustomID    = "vip_gen_cooldown"
	ServiceEmojiInputCustomID      = "service_emoji"
	ServiceNameInputCustomID       = "service_name"
	ServiceVIPInputCustomID        = "service_vip"
	RestockChannelInputCustomID    = "restock_channel"
	RestockPingInputCustomID       = "restock_ping"
	LogChannelInputCustomID        = "logs_channel"
	VIPRoleInputCustomID           = "vip_role"
	SupplierRoleInputCustomID      = "supplier_role"
	VerificationRoleInputCustomID  = "verification_role"
	AccountsTextInputCustomID      = "accounts_text"
	RemoveCountInputCustomID       = "count"
	CodeInputCustomID              = "code"
	MinMessagesInputCustomID       = "min_messages"
	NumberOfWinnersInputCustomID   = "number_of_winners"
	NumberOfAccountsInputCustomID  = "number_of_accounts"
	AccountTypeInputCustomID       = "account_type"

	// Select Menus.
	ServiceDeleteSelectCustomID      = "select_service_delete"
	ServiceAddStockSelectCustomID    = "select_service_add_stock"
	ServiceRemoveStockSelectCustomID = "select_service_remove_stock"
	GiveawayActionSelectCustomID     = "select_giveaway_action"
	GiveawayServicesSelectCustomID   = "select_giveaway_services"

	// Giveaway action values.
	GiveawayActionToggle   = "toggle_giveaway"
	GiveawayActionSettings = "config_giveaway_settings"
	GiveawayActionServices = "config_giveaway_services"
	GiveawayActionStats    = "view_giveaway_stats"
	GiveawayActionRun      = "run_manual_giveaway"
	GiveawayActionHistory  = "view_giveaway_history"
)

const (
	// TicketAutoCloseDelay is how long a ticket channel lives without being
	// closed explicitly.
	TicketAutoCloseDelay = 5 * time.Minute

	// TicketCloseDelay gives the close confirmation time to render before the
	// channel is deleted.
	TicketCloseDelay = 2 * time.Second
)
