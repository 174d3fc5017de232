/*
Package portalsdk provides a client SDK for the VentureBot portal API.

# Overview

The package is organized around three layers:

  - Client: a thin, cookie-jar-backed API client covering every portal
    endpoint (auth, dashboard, leads, campaigns, appointments, staff,
    transactions, payments, messaging).
  - Stores: SessionStore and TenantStore, stateful mirrors of the server's
    view for callers that want a synchronous, always-available snapshot.
  - Dispatcher: the bulk WhatsApp dispatch loop with per-recipient delivery
    records and progress reporting.

# Client

Create a Client and sign in; the session rides an HttpOnly cookie held in the
client's jar, so subsequent calls are authenticated automatically:

	client := portalsdk.NewClient("https://portal.example.com")

	user, err := client.Login(ctx, "jane@agency.in", "password")
	if err != nil {
		log.Fatal(err)
	}

	leads, err := client.ListLeads(ctx)

# Stores

SessionStore and TenantStore cooperate through the tenant-change hook: when
the session's tenant changes (login, logout, rehydration), the tenant store
reloads or clears all workspace data.

	session := portalsdk.NewSessionStore(client)
	tenants := portalsdk.NewTenantStore(client)

	session.OnTenantChange(func(tenantID string) {
		tenants.SetTenant(ctx, tenantID)
	})

	session.Init(ctx) // rehydrate from an existing cookie

Store loads are best-effort: a failed fetch clears only its own slice and
logs, so one broken endpoint never blanks the whole workspace.

# Dispatch

The Dispatcher sends a personalized template to each recipient in turn,
pausing between sends to stay under the provider's rate ceiling:

	d := &portalsdk.Dispatcher{
		Sender: client,
		OnProgress: func(percent int) {
			fmt.Printf("%d%%\n", percent)
		},
	}

	recipients := portalsdk.RecipientsFromLeads(tenants.Leads())
	summary, err := d.Run(ctx, "Hi {{name}}, see {{property}}", recipients)

Per-recipient failures are recorded on the summary and never halt the loop.
Cancel the context to stop a run early.
*/
package portalsdk
