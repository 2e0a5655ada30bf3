package mysql

// Note: `key` is reserved; keep it quoted everywhere.
const upsertDestinationSQL = "INSERT INTO destinations\n" +
	"  (`key`, name, lat, lon, country, position)\n" +
	"VALUES\n" +
	"  (?, ?, ?, ?, ?, ?)\n" +
	"ON DUPLICATE KEY UPDATE\n" +
	"  name       = VALUES(name),\n" +
	"  lat        = VALUES(lat),\n" +
	"  lon        = VALUES(lon),\n" +
	"  country    = VALUES(country),\n" +
	"  position   = VALUES(position),\n" +
	"  updated_at = CURRENT_TIMESTAMP"

const upsertCityPriceSQL = `
INSERT INTO city_prices
  (city, base_price)
VALUES
  (?, ?)
ON DUPLICATE KEY UPDATE
  base_price = VALUES(base_price),
  updated_at = CURRENT_TIMESTAMP
`

// Declaration order drives the Gazetteer's full-text scan.
const listDestinationsSQL = "SELECT `key`, name, lat, lon, country, position\n" +
	"FROM destinations\n" +
	"ORDER BY position ASC, `key` ASC"

const listCityPricesSQL = `
SELECT city, base_price
FROM city_prices
`
