package prompts

// Static prompt content. Only the schema block varies per store; everything
// here is fixed for the life of the binary.

const generationRules = `**Strict Generation Rules:**
1. Use ONLY these exact table and column names - never modify or guess names.
2. For date operations, use SQLite DATE functions.
3. For monetary calculations, include discount properly: (Quantity * Unit_Price * (1 - Discount)).
4. Always use explicit JOINs with ON clauses for relationships.

**Output Requirements:**
- ONLY executable SQL code.
- NO markdown formatting.
- NO database labels.
- NO comments or explanations.
- NO trailing semicolons.

**Error Prevention:**
1. Never use table/column names not in the provided schema.
2. Always verify joins use correct foreign keys.
3. For date filtering, use: DATE('now') or strftime().
4. For status checks, use exact values like 'Failed' (with quotes).

**Validation Steps (MUST DO):**
1. Verify all table/column names match the exact schema.
2. Check all JOINs use correct foreign key relationships.
3. Ensure monetary calculations include discount.
4. Confirm date operations use SQLite functions.
5. Remove any non-SQL text.`

const queryExamples = `**Examples:**

Natural language: Show all customers who placed an order in the last 30 days
SQL:
SELECT DISTINCT Customers.CustomerID, Customers.CustomerName
FROM Orders
JOIN Customers ON Orders.CustomerID = Customers.CustomerID
WHERE DATE(Orders.OrderDate) >= DATE('now', '-30 days')

Natural language: Find total revenue per product after discounts
SQL:
SELECT Products.ProductName, SUM(Order_Details.Quantity * Order_Details.Unit_Price * (1 - Order_Details.Discount)) AS TotalRevenue
FROM Order_Details
JOIN Products ON Order_Details.ProductID = Products.ProductID
GROUP BY Products.ProductID

Natural language: Get list of employees who processed more than 10 orders
SQL:
SELECT Employees.EmployeeID, Employees.EmployeeName, COUNT(Orders.OrderID) AS TotalOrders
FROM Orders
JOIN Employees ON Orders.EmployeeID = Employees.EmployeeID
GROUP BY Employees.EmployeeID
HAVING COUNT(Orders.OrderID) > 10

Natural language: List all orders with status 'Failed'
SQL:
SELECT *
FROM Orders
WHERE Orders.Status = 'Failed'

Natural language: Retrieve the average discount given per product
SQL:
SELECT Products.ProductName, AVG(Order_Details.Discount) AS AvgDiscount
FROM Order_Details
JOIN Products ON Order_Details.ProductID = Products.ProductID
GROUP BY Products.ProductID`
