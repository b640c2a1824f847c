package mysql

const insertHotelSQL = `
INSERT INTO hotels
  (name, location, description, images)
VALUES
  (?, ?, ?, ?)
`

const updateHotelSQL = `
UPDATE hotels
SET location    = ?,
    description = ?,
    images      = ?,
    updated_at  = CURRENT_TIMESTAMP
WHERE name = ?
`

const deleteHotelSQL = `DELETE FROM hotels WHERE name = ?`

const getHotelSQL = `
SELECT id, name, location, description, images, created_at, updated_at
FROM hotels
WHERE name = ?
`

const listHotelsSQL = `
SELECT id, name, location, description, images, created_at, updated_at
FROM hotels
ORDER BY name
`

const insertTestimonialSQL = `
INSERT INTO testimonials
  (id, author, ` + "`text`" + `, avatar, ` + "`date`" + `)
VALUES
  (?, ?, ?, ?, ?)
`

// Note: `text` and `date` are reserved-ish; keep them quoted everywhere.
const listTestimonialsSQL = `
SELECT id, author, ` + "`text`" + `, avatar, ` + "`date`" + `
FROM testimonials
ORDER BY ` + "`date`" + ` DESC, id DESC
`

const deleteTestimonialSQL = `DELETE FROM testimonials WHERE id = ?`
