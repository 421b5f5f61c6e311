package store

// The ten predefined report queries. Each entry names the precomputed view the
// ETL may have left in the store; when the view is absent the inline fallback
// runs directly against the base table. Labels, view names and fallback SQL
// match the dataset tooling that produced the store.
type catalogDef struct {
	Label    string
	ViewName string
	Fallback string
}

var catalogDefs = []catalogDef{
	{
		Label:    "Successful bookings",
		ViewName: "successful_bookings",
		Fallback: "SELECT * FROM bookings WHERE booking_status = 'Success'",
	},
	{
		Label:    "Avg distance by vehicle",
		ViewName: "avg_vehicle_types",
		Fallback: "SELECT vehicle_type, AVG(ride_distance) AS avg_distance FROM bookings GROUP BY vehicle_type",
	},
	{
		Label:    "Cancelled by customers",
		ViewName: "count_cancelled_ride_by_customers",
		Fallback: "SELECT COUNT(*) AS total_cancelled_by_customers FROM bookings WHERE booking_status='Canceled_Rides_by_Customer'",
	},
	{
		Label:    "Top 5 customers by rides",
		ViewName: "Top_5_customers",
		Fallback: "SELECT customer_id, COUNT(booking_id) AS total_rides FROM bookings GROUP BY customer_id ORDER BY total_rides DESC LIMIT 5",
	},
	{
		Label:    "Driver cancels (personal/car)",
		ViewName: "cancelled_by_drivers",
		Fallback: "SELECT COUNT(*) AS driver_cancel_personal_car FROM bookings WHERE Canceled_Rides_by_Driver='Personal & Car releated issue'",
	},
	{
		Label:    "Min/Max driver rating (Prime Sedan)",
		ViewName: "min_max_driver_ratings",
		Fallback: "SELECT MAX(driver_ratings) AS max_rating, MIN(driver_ratings) AS min_rating FROM bookings WHERE vehicle_type='Prime Sedan'",
	},
	{
		Label:    "UPI payments",
		ViewName: "Pay_UPI",
		Fallback: "SELECT * FROM bookings WHERE payment_method='UPI'",
	},
	{
		Label:    "Avg customer rating per vehicle",
		ViewName: "Avg_Customer_Rating",
		Fallback: "SELECT vehicle_type, AVG(customer_rating) AS Avg_Cust_Rating FROM bookings GROUP BY vehicle_type",
	},
	{
		Label:    "Total booking value (successful)",
		ViewName: "Total_values",
		Fallback: "SELECT SUM(booking_value) AS total_success_value FROM bookings WHERE booking_status='Success'",
	},
	{
		Label:    "Incomplete rides with reason",
		ViewName: "incomplete_rides",
		Fallback: "SELECT booking_id, Incomplete_Rides_Reason FROM bookings WHERE Incomplete_Rides='Yes'",
	},
}
