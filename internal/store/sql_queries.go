package store

const (
	findUserByID = `SELECT id, name, email, password_hash, role, created_at
    FROM users
    WHERE id = $1;`

	getCar = `SELECT id, brand, model, year, category, seats, fuel_type, transmission, price_per_day, location, description, image_url, is_available, created_at
		FROM cars
		WHERE id = $1;`

	createCar = `INSERT INTO cars (id, brand, model, year, category, seats, fuel_type, transmission, price_per_day, location, description, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, brand, model, year, category, seats, fuel_type, transmission, price_per_day, location, description, image_url, is_available, created_at;`

	updateCar = `UPDATE cars
		SET brand = $2, model = $3, year = $4, category = $5, seats = $6, fuel_type = $7, transmission = $8, price_per_day = $9, location = $10, description = $11, image_url = $12, is_available = $13
		WHERE id = $1
		RETURNING id, brand, model, year, category, seats, fuel_type, transmission, price_per_day, location, description, image_url, is_available, created_at;`

	deleteCar = `DELETE FROM cars
		WHERE id = $1;`

	createBooking = `INSERT INTO bookings (id, user_id, car_id, pickup_date, return_date, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, car_id, pickup_date, return_date, total_price, status, created_at;`

	getBooking = `SELECT id, user_id, car_id, pickup_date, return_date, total_price, status, created_at
		FROM bookings
		WHERE id = $1;`

	listBookingsByUser = `SELECT id, user_id, car_id, pickup_date, return_date, total_price, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC;`

	countOverlappingBookings = `SELECT COUNT(*)
		FROM bookings
		WHERE car_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND pickup_date < $3
		  AND return_date > $2;`

	updateBookingStatus = `UPDATE bookings
		SET status = $2
		WHERE id = $1;`

	createPayment = `INSERT INTO payments (id, booking_id, user_id, amount, currency, status, provider_intent_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, booking_id, user_id, amount, currency, status, provider_intent_id, created_at;`

	getPayment = `SELECT id, booking_id, user_id, amount, currency, status, provider_intent_id, created_at
		FROM payments
		WHERE id = $1;`

	updatePaymentStatus = `UPDATE payments
		SET status = $2
		WHERE id = $1;`
)
