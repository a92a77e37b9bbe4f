package integration_test

const (
	TestAdminPassword = "admin-password"
	TestBasePrice     = 1500

	TestUsername     = "bob"
	TestUserPassword = "pa55word"

	TestMovieTitle   = "Dune"
	TestMovieGenre   = "sci-fi"
	TestMovieRuntime = 155

	TestRoomName    = "Pedersoli"
	TestRoomRows    = 10
	TestRoomColumns = 12

	TestStartTime = "2024-03-01 18:00"
)
