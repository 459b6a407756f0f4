package services

import (
	"strings"

	"charades-game-service/models"

	"github.com/gosimple/slug"
)

// seedMovie is one built-in catalog entry before id and word-count
// derivation.
type seedMovie struct {
	Title      string
	Year       int
	Hero       string
	Heroine    string
	Difficulty string
	Genre      string
}

var hindiMovies = []seedMovie{
	// Easy: popular blockbusters
	{"Dilwale Dulhania Le Jayenge", 1995, "Shah Rukh Khan", "Kajol", "easy", "Romance"},
	{"Sholay", 1975, "Amitabh Bachchan", "Hema Malini", "easy", "Action"},
	{"3 Idiots", 2009, "Aamir Khan", "Kareena Kapoor", "easy", "Comedy"},
	{"Kuch Kuch Hota Hai", 1998, "Shah Rukh Khan", "Kajol", "easy", "Romance"},
	{"Dangal", 2016, "Aamir Khan", "Fatima Sana Shaikh", "easy", "Sports"},
	{"Baahubali", 2015, "Prabhas", "Anushka Shetty", "easy", "Action"},
	{"PK", 2014, "Aamir Khan", "Anushka Sharma", "easy", "Comedy"},
	{"Bajrangi Bhaijaan", 2015, "Salman Khan", "Kareena Kapoor", "easy", "Drama"},
	{"Kabhi Khushi Kabhie Gham", 2001, "Shah Rukh Khan", "Kajol", "easy", "Drama"},
	{"Lagaan", 2001, "Aamir Khan", "Gracy Singh", "easy", "Sports"},
	{"Hum Aapke Hain Koun", 1994, "Salman Khan", "Madhuri Dixit", "easy", "Romance"},
	{"Dil To Pagal Hai", 1997, "Shah Rukh Khan", "Madhuri Dixit", "easy", "Romance"},
	{"Zindagi Na Milegi Dobara", 2011, "Hrithik Roshan", "Katrina Kaif", "easy", "Drama"},
	{"Dhoom 2", 2006, "Hrithik Roshan", "Aishwarya Rai", "easy", "Action"},
	{"Ghajini", 2008, "Aamir Khan", "Asin", "easy", "Action"},
	{"Chennai Express", 2013, "Shah Rukh Khan", "Deepika Padukone", "easy", "Comedy"},
	{"Jab We Met", 2007, "Shahid Kapoor", "Kareena Kapoor", "easy", "Romance"},
	{"Rang De Basanti", 2006, "Aamir Khan", "Soha Ali Khan", "easy", "Drama"},
	{"Dil Chahta Hai", 2001, "Aamir Khan", "Preity Zinta", "easy", "Drama"},
	{"Taare Zameen Par", 2007, "Aamir Khan", "Tisca Chopra", "easy", "Drama"},
	{"Kal Ho Naa Ho", 2003, "Shah Rukh Khan", "Preity Zinta", "easy", "Romance"},
	{"Hum Dil De Chuke Sanam", 1999, "Salman Khan", "Aishwarya Rai", "easy", "Romance"},
	{"Padmaavat", 2018, "Shahid Kapoor", "Deepika Padukone", "easy", "Drama"},
	{"War", 2019, "Hrithik Roshan", "Vaani Kapoor", "easy", "Action"},
	{"Pathaan", 2023, "Shah Rukh Khan", "Deepika Padukone", "easy", "Action"},
	{"Jawan", 2023, "Shah Rukh Khan", "Nayanthara", "easy", "Action"},
	{"Animal", 2023, "Ranbir Kapoor", "Rashmika Mandanna", "easy", "Action"},
	{"Stree", 2018, "Rajkummar Rao", "Shraddha Kapoor", "easy", "Horror Comedy"},
	{"Singham", 2011, "Ajay Devgn", "Kajal Aggarwal", "easy", "Action"},
	{"Golmaal", 2006, "Ajay Devgn", "Sharman Joshi", "easy", "Comedy"},
	{"Drishyam", 2015, "Ajay Devgn", "Shriya Saran", "easy", "Thriller"},
	{"Om Shanti Om", 2007, "Shah Rukh Khan", "Deepika Padukone", "easy", "Drama"},
	{"Yeh Jawaani Hai Deewani", 2013, "Ranbir Kapoor", "Deepika Padukone", "easy", "Romance"},
	{"Barfi", 2012, "Ranbir Kapoor", "Priyanka Chopra", "easy", "Romance"},
	{"Queen", 2014, "Rajkummar Rao", "Kangana Ranaut", "easy", "Drama"},

	// Medium: older or less mainstream titles
	{"Deewar", 1975, "Amitabh Bachchan", "Parveen Babi", "medium", "Action"},
	{"Amar Akbar Anthony", 1977, "Amitabh Bachchan", "Parveen Babi", "medium", "Comedy"},
	{"Don", 1978, "Amitabh Bachchan", "Zeenat Aman", "medium", "Action"},
	{"Silsila", 1981, "Amitabh Bachchan", "Rekha", "medium", "Drama"},
	{"Lamhe", 1991, "Anil Kapoor", "Sridevi", "medium", "Romance"},
	{"Chandni", 1989, "Rishi Kapoor", "Sridevi", "medium", "Romance"},
	{"Mr. India", 1987, "Anil Kapoor", "Sridevi", "medium", "Action"},
	{"Qayamat Se Qayamat Tak", 1988, "Aamir Khan", "Juhi Chawla", "medium", "Romance"},
	{"Maine Pyar Kiya", 1989, "Salman Khan", "Bhagyashree", "medium", "Romance"},
	{"Darr", 1993, "Shah Rukh Khan", "Juhi Chawla", "medium", "Thriller"},
	{"Baazigar", 1993, "Shah Rukh Khan", "Kajol", "medium", "Thriller"},
	{"Kabhi Haan Kabhi Naa", 1994, "Shah Rukh Khan", "Suchitra Krishnamoorthi", "medium", "Comedy"},
	{"Dil Se", 1998, "Shah Rukh Khan", "Manisha Koirala", "medium", "Drama"},
	{"Satya", 1998, "J.D. Chakravarthy", "Urmila Matondkar", "medium", "Crime"},
	{"Company", 2002, "Ajay Devgn", "Manisha Koirala", "medium", "Crime"},
	{"Gangster", 2006, "Emraan Hashmi", "Kangana Ranaut", "medium", "Crime"},
	{"Life In A Metro", 2007, "Shilpa Shetty", "Konkona Sen Sharma", "medium", "Drama"},
	{"Wake Up Sid", 2009, "Ranbir Kapoor", "Konkona Sen Sharma", "medium", "Drama"},
	{"Paan Singh Tomar", 2012, "Irrfan Khan", "Mahie Gill", "medium", "Drama"},
	{"The Lunchbox", 2013, "Irrfan Khan", "Nimrat Kaur", "medium", "Romance"},
	{"Haider", 2014, "Shahid Kapoor", "Shraddha Kapoor", "medium", "Drama"},
	{"Udaan", 2010, "Rajat Barmecha", "Ram Kapoor", "medium", "Drama"},
	{"Gangs of Wasseypur", 2012, "Manoj Bajpayee", "Richa Chadha", "medium", "Crime"},
	{"Raazi", 2018, "Vicky Kaushal", "Alia Bhatt", "medium", "Thriller"},
	{"Andhadhun", 2018, "Ayushmann Khurrana", "Radhika Apte", "medium", "Thriller"},
	{"Article 15", 2019, "Ayushmann Khurrana", "Sayani Gupta", "medium", "Drama"},
	{"Gully Boy", 2019, "Ranveer Singh", "Alia Bhatt", "medium", "Drama"},
	{"Tumbbad", 2018, "Sohum Shah", "Jyoti Malshe", "medium", "Horror"},
	{"Newton", 2017, "Rajkummar Rao", "Anjali Patil", "medium", "Drama"},
	{"Masaan", 2015, "Vicky Kaushal", "Richa Chadha", "medium", "Drama"},
	{"Toilet Ek Prem Katha", 2017, "Akshay Kumar", "Bhumi Pednekar", "medium", "Comedy"},
	{"Badhaai Ho", 2018, "Ayushmann Khurrana", "Sanya Malhotra", "medium", "Comedy"},
	{"Shubh Mangal Zyada Saavdhan", 2020, "Ayushmann Khurrana", "Jitendra Kumar", "medium", "Comedy"},
	{"Piku", 2015, "Amitabh Bachchan", "Deepika Padukone", "medium", "Comedy"},
	{"Tamasha", 2015, "Ranbir Kapoor", "Deepika Padukone", "medium", "Drama"},
	{"Rockstar", 2011, "Ranbir Kapoor", "Nargis Fakhri", "medium", "Drama"},
	{"Lootera", 2013, "Ranveer Singh", "Sonakshi Sinha", "medium", "Romance"},

	// Hard: obscure or complex titles
	{"Jaane Bhi Do Yaaro", 1983, "Naseeruddin Shah", "Bhakti Barve", "hard", "Comedy"},
	{"Katha", 1983, "Naseeruddin Shah", "Deepti Naval", "hard", "Drama"},
	{"Ardh Satya", 1983, "Om Puri", "Smita Patil", "hard", "Drama"},
	{"Mirch Masala", 1987, "Naseeruddin Shah", "Smita Patil", "hard", "Drama"},
	{"Ankur", 1974, "Anant Nag", "Shabana Azmi", "hard", "Drama"},
	{"Sparsh", 1980, "Naseeruddin Shah", "Shabana Azmi", "hard", "Drama"},
	{"Paar", 1984, "Naseeruddin Shah", "Shabana Azmi", "hard", "Drama"},
	{"Manthan", 1976, "Girish Karnad", "Smita Patil", "hard", "Drama"},
	{"Bhumika", 1977, "Amol Palekar", "Smita Patil", "hard", "Drama"},
	{"Ijaazat", 1987, "Naseeruddin Shah", "Rekha", "hard", "Drama"},
	{"Ek Duuje Ke Liye", 1981, "Kamal Haasan", "Rati Agnihotri", "hard", "Romance"},
	{"Saaransh", 1984, "Anupam Kher", "Rohini Hattangadi", "hard", "Drama"},
	{"Jaane Tu Ya Jaane Na", 2008, "Imran Khan", "Genelia D'Souza", "hard", "Romance"},
	{"Band Baaja Baaraat", 2010, "Ranveer Singh", "Anushka Sharma", "hard", "Comedy"},
	{"Dev D", 2009, "Abhay Deol", "Mahie Gill", "hard", "Drama"},
	{"Oye Lucky Lucky Oye", 2008, "Abhay Deol", "Paresh Rawal", "hard", "Comedy"},
	{"Love Aaj Kal", 2009, "Saif Ali Khan", "Deepika Padukone", "hard", "Romance"},
	{"Pyaar Ke Side Effects", 2006, "Rahul Bose", "Mallika Sherawat", "hard", "Comedy"},
	{"Khosla Ka Ghosla", 2006, "Anupam Kher", "Boman Irani", "hard", "Comedy"},
	{"Johnny Gaddaar", 2007, "Neil Nitin Mukesh", "Rimi Sen", "hard", "Thriller"},
	{"Maqbool", 2003, "Irrfan Khan", "Tabu", "hard", "Crime"},
	{"Omkara", 2006, "Ajay Devgn", "Kareena Kapoor", "hard", "Crime"},
	{"Gulaal", 2009, "Raj Singh Chaudhary", "Jesse Randhawa", "hard", "Drama"},
	{"Kahaani", 2012, "Parambrata Chatterjee", "Vidya Balan", "hard", "Thriller"},
	{"Talaash", 2012, "Aamir Khan", "Rani Mukerji", "hard", "Thriller"},
	{"Shanghai", 2012, "Emraan Hashmi", "Kalki Koechlin", "hard", "Drama"},
	{"Ishqiya", 2010, "Naseeruddin Shah", "Vidya Balan", "hard", "Crime"},
	{"Dedh Ishqiya", 2014, "Naseeruddin Shah", "Madhuri Dixit", "hard", "Crime"},
	{"Aligarh", 2015, "Manoj Bajpayee", "Rajkummar Rao", "hard", "Drama"},
	{"Trapped", 2017, "Rajkummar Rao", "Geetanjali Thapa", "hard", "Thriller"},
	{"A Death in the Gunj", 2016, "Vikrant Massey", "Kalki Koechlin", "hard", "Drama"},
	{"Mukti Bhawan", 2016, "Adil Hussain", "Lalit Behl", "hard", "Drama"},
	{"Photograph", 2019, "Nawazuddin Siddiqui", "Sanya Malhotra", "hard", "Romance"},
	{"Thappad", 2020, "Pavail Gulati", "Taapsee Pannu", "hard", "Drama"},
	{"Bulbbul", 2020, "Avinash Tiwary", "Tripti Dimri", "hard", "Horror"},
	{"Pagglait", 2021, "Ashutosh Rana", "Sanya Malhotra", "hard", "Drama"},
	{"Raat Akeli Hai", 2020, "Nawazuddin Siddiqui", "Radhika Apte", "hard", "Thriller"},
	{"Ludo", 2020, "Abhishek Bachchan", "Rajkummar Rao", "hard", "Comedy"},
	{"Mimi", 2021, "Pankaj Tripathi", "Kriti Sanon", "hard", "Comedy"},
	{"Sardar Udham", 2021, "Vicky Kaushal", "Banita Sandhu", "hard", "Drama"},
}

// buildCatalog derives the stored rows: the id is the title slug and
// word_count is how many words the actor has to mime.
func buildCatalog() []models.Movie {
	movies := make([]models.Movie, 0, len(hindiMovies))
	for _, m := range hindiMovies {
		movies = append(movies, models.Movie{
			ID:         slug.Make(m.Title),
			Title:      m.Title,
			Year:       m.Year,
			Hero:       m.Hero,
			Heroine:    m.Heroine,
			WordCount:  len(strings.Fields(m.Title)),
			Difficulty: m.Difficulty,
			Genre:      m.Genre,
		})
	}
	return movies
}
