// Package queries holds the fixed registry of named analytical queries the
// dashboard is built from. The registry is static: definitions are compiled
// into the binary and never read from user input.
package queries

import "github.com/ogsdata/dashgen/pkg/models"

// registry lists every dashboard query in execution order.
var registry = []models.Query{
	{
		Name:        "kpis",
		Description: "Global order, customer and revenue totals",
		SQL: `
SELECT
    COUNT(DISTINCT invoiceno) AS total_orders,
    COUNT(DISTINCT customerid) AS unique_customers,
    SUM(total_price) AS total_revenue,
    AVG(total_price) AS avg_order_value
FROM online_retail_cleaned`,
	},
	{
		Name:        "monthly_sales",
		Description: "Revenue and order counts per calendar month",
		SQL: `
SELECT
    date_trunc('month', invoicedate) AS sales_month,
    SUM(total_price) AS monthly_revenue,
    COUNT(DISTINCT invoiceno) AS monthly_orders
FROM online_retail_cleaned
GROUP BY 1
ORDER BY 1`,
	},
	{
		Name:        "monthly_revenue",
		Description: "Revenue per month keyed by YYYY-MM label",
		SQL: `
SELECT
    DATE_FORMAT(invoicedate, '%Y-%m') AS month,
    SUM(total_price) AS revenue
FROM online_retail_cleaned
GROUP BY DATE_FORMAT(invoicedate, '%Y-%m')
ORDER BY month`,
	},
	{
		Name:        "monthly_revenue_by_country",
		Description: "Monthly revenue split per country",
		SQL: `
SELECT
    country,
    DATE_FORMAT(invoicedate, '%Y-%m') AS month,
    SUM(total_price) AS revenue
FROM online_retail_cleaned
GROUP BY country, DATE_FORMAT(invoicedate, '%Y-%m')
ORDER BY country, month`,
	},
	{
		Name:        "country_revenue",
		Description: "Revenue, orders, customers and average order value per country",
		SQL: `
SELECT
    country,
    SUM(total_price) AS revenue,
    COUNT(DISTINCT invoiceno) AS orders,
    COUNT(DISTINCT customerid) AS customers,
    CASE
        WHEN COUNT(DISTINCT invoiceno) = 0 THEN 0
        ELSE SUM(total_price) / COUNT(DISTINCT invoiceno)
    END AS avg_order_value
FROM online_retail_cleaned
GROUP BY country
HAVING SUM(total_price) > 0
ORDER BY revenue DESC`,
	},
	{
		Name:        "top_products",
		Description: "Best selling products per country by revenue",
		SQL: `
SELECT
    country,
    description,
    SUM(quantity) AS total_quantity_sold,
    SUM(total_price) AS revenue
FROM online_retail_cleaned
GROUP BY country, description
ORDER BY revenue DESC`,
	},
	{
		Name:        "rfm_analysis",
		Description: "Recency, frequency and monetary value per repeat customer",
		SQL: `
SELECT
    country,
    customerid,
    CAST(date_diff('day', MAX(invoicedate), current_date) AS INTEGER) AS recency,
    COUNT(DISTINCT invoiceno) AS frequency,
    SUM(total_price) AS monetary
FROM online_retail_cleaned
GROUP BY country, customerid
HAVING COUNT(DISTINCT invoiceno) > 1`,
	},
	{
		Name:        "cohort_analysis",
		Description: "Active customers per acquisition cohort and month offset",
		SQL: `
WITH first_order AS (
    SELECT
        customerid,
        country,
        date_trunc('month', MIN(invoicedate)) AS cohort_month
    FROM online_retail_cleaned
    GROUP BY customerid, country
),
orders AS (
    SELECT
        customerid,
        country,
        date_trunc('month', invoicedate) AS order_month
    FROM online_retail_cleaned
    GROUP BY customerid, country, date_trunc('month', invoicedate)
),
joined AS (
    SELECT
        o.customerid,
        o.country,
        f.cohort_month,
        o.order_month,
        date_diff('month', f.cohort_month, o.order_month) AS month_offset
    FROM orders o
    JOIN first_order f
        ON o.customerid = f.customerid
       AND o.country = f.country
)
SELECT
    country,
    cohort_month,
    CAST(month_offset AS INTEGER) AS month_index,
    COUNT(DISTINCT customerid) AS active_customers
FROM joined
GROUP BY country, cohort_month, month_index
ORDER BY country, cohort_month, month_index`,
	},
	{
		Name:        "market_basket",
		Description: "Product pairs most often purchased together",
		SQL: `
SELECT
    t1.description AS product_a,
    t2.description AS product_b,
    COUNT(*) AS times_purchased_together
FROM online_retail_cleaned t1
JOIN online_retail_cleaned t2
    ON t1.invoiceno = t2.invoiceno
WHERE t1.stockcode < t2.stockcode
  AND t1.description NOT LIKE '%POSTAGE%'
  AND t2.description NOT LIKE '%POSTAGE%'
GROUP BY 1, 2
ORDER BY 3 DESC
LIMIT 15`,
	},
}

// All returns every registered query definition in execution order.
func All() []models.Query {
	defs := make([]models.Query, len(registry))
	copy(defs, registry)
	return defs
}

// Get returns the query definition registered under name.
func Get(name string) (models.Query, bool) {
	for _, query := range registry {
		if query.Name == name {
			return query, true
		}
	}
	return models.Query{}, false
}

// Names returns the names of all registered queries in execution order.
func Names() []string {
	names := make([]string, len(registry))
	for i, query := range registry {
		names[i] = query.Name
	}
	return names
}
