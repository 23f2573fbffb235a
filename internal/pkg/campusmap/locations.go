package campusmap

// SchoolCenter is the midpoint the map opens on.
var SchoolCenter = LatLng{Lat: -43.50713855170288, Lng: 172.57701091063876}

// Campus lists every named place shown on the map, in display order.
var Campus = []Location{
	{Name: "A Block", Position: LatLng{-43.50767607962358, 172.57621966007108}},
	{Name: "B Block", Position: LatLng{-43.507258002762555, 172.57649534465384}},
	{Name: "C1 Block", Position: LatLng{-43.507336958220584, 172.57692885310962}},
	{Name: "C3-4 Block", Position: LatLng{-43.50713855170288, 172.57701091063876}},
	{Name: "P Block", Position: LatLng{-43.50679524519272, 172.57576170047136}},
	{Name: "M Block", Position: LatLng{-43.508036322773854, 172.57585920976163}},
	{Name: "Aurora Center", Position: LatLng{-43.508548336966456, 172.57611858764898}},
	{Name: "Library", Position: LatLng{-43.50768093385897, 172.57690035175943}},
	{Name: "G Block", Position: LatLng{-43.50680754991145, 172.57687446294506}},
	{Name: "L Block", Position: LatLng{-43.50729540052514, 172.57605599645274}},
	{Name: "N Block", Position: LatLng{-43.50672110583437, 172.57630225157354}},
	{Name: "E Block", Position: LatLng{-43.50743157630898, 172.57557856325985}},
	{Name: "K5-K6 Block", Position: LatLng{-43.50599959130328, 172.5766635615753}},
	{Name: "K1-K3 Block", Position: LatLng{-43.5062665985537, 172.57640539896025}},
	{Name: "Hunter Gym", Position: LatLng{-43.50632638862487, 172.57709402902427}},
	{Name: "Cross Gym", Position: LatLng{-43.50673346447026, 172.57777757004496}},
	{Name: "Dance Hall", Position: LatLng{-43.50622379965693, 172.57682248245672}},
	{Name: "Canteen", Position: LatLng{-43.50739087991838, 172.57747902572711}},
	{Name: "Pool", Position: LatLng{-43.50698842492684, 172.57770103373863}},
	{Name: "Turf/Football-Field", Position: LatLng{-43.506852653812025, 172.57802912691722}},
	{Name: "D1-D6 Block", Position: LatLng{-43.50773718242374, 172.57730998413808}},
	{Name: "D13-D16 Block", Position: LatLng{-43.50761170681216, 172.57759832158754}},
	{Name: "X Block", Position: LatLng{-43.50696927145228, 172.57637389795957}},
	{Name: "IT Office", Position: LatLng{-43.50718642257362, 172.57605667843748}},
	{Name: "Career Office", Position: LatLng{-43.5068786061543, 172.5770557109524}},
}
