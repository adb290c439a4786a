package postgres

// =============================================================================
// SQL Query Constants
// =============================================================================

const (
	// SQLEnsureConfiguration registers a configuration name idempotently
	SQLEnsureConfiguration = `INSERT INTO configurations (name) VALUES ($1) ON CONFLICT DO NOTHING`

	// SQLSelectConfigurations lists every registered configuration name
	SQLSelectConfigurations = `SELECT name FROM configurations ORDER BY name`

	// SQLDeleteLookups clears one category before a replace
	SQLDeleteLookups = `DELETE FROM lookup_entries WHERE configuration_name = $1 AND category = $2`

	// SQLInsertLookup adds one lookup name with its display position
	SQLInsertLookup = `
		INSERT INTO lookup_entries (configuration_name, category, name, position)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`

	// SQLSelectLookups reads every simple lookup entry of a configuration
	SQLSelectLookups = `
		SELECT category, name
		FROM lookup_entries
		WHERE configuration_name = $1
		ORDER BY category, position, name
	`

	// SQLSelectCategoryNames reads the live names of one simple category
	SQLSelectCategoryNames = `
		SELECT name
		FROM lookup_entries
		WHERE configuration_name = $1 AND category = $2
		ORDER BY position, name
	`

	SQLDeleteSupplierGroups = `DELETE FROM supplier_groups WHERE configuration_name = $1`

	SQLInsertSupplierGroup = `
		INSERT INTO supplier_groups (configuration_name, group_name, position)
		VALUES ($1, $2, $3)
	`

	SQLInsertPriceList = `
		INSERT INTO price_lists (configuration_name, group_name, price_list_name, position)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`

	SQLSelectSupplierGroups = `
		SELECT group_name
		FROM supplier_groups
		WHERE configuration_name = $1
		ORDER BY position, group_name
	`

	// SQLSelectPriceLists reads price-list names across all supplier
	// groups in group order
	SQLSelectPriceLists = `
		SELECT pl.price_list_name
		FROM price_lists pl
		JOIN supplier_groups sg
		  ON sg.configuration_name = pl.configuration_name
		 AND sg.group_name = pl.group_name
		WHERE pl.configuration_name = $1
		ORDER BY sg.position, pl.position, pl.price_list_name
	`

	// SQLUpsertItem registers a payload digest with the next positional
	// index for the configuration
	SQLUpsertItem = `
		INSERT INTO content_items
			(configuration_name, payload_digest, cid, database_id, is_product_list, reference_names, product_list)
		VALUES
			($1, $2,
			 (SELECT COALESCE(MAX(cid) + 1, 0) FROM content_items WHERE configuration_name = $1),
			 $3, $4, $5, $6)
		ON CONFLICT (configuration_name, payload_digest) DO UPDATE SET
			database_id     = EXCLUDED.database_id,
			is_product_list = EXCLUDED.is_product_list,
			reference_names = EXCLUDED.reference_names,
			product_list    = EXCLUDED.product_list
		RETURNING cid
	`

	SQLSelectItem = `
		SELECT cid, database_id, is_product_list, reference_names, product_list
		FROM content_items
		WHERE configuration_name = $1 AND payload_digest = $2
	`

	SQLSelectBindings = `
		SELECT reference_names
		FROM item_bindings
		WHERE configuration_name = $1 AND item_path = $2
	`

	SQLUpsertBindings = `
		INSERT INTO item_bindings (configuration_name, item_path, reference_names, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (configuration_name, item_path) DO UPDATE SET
			reference_names = EXCLUDED.reference_names,
			updated_at      = NOW()
	`
)
