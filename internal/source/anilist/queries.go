package anilist

const mediaPageQuery = `
query ($page: Int, $perPage: Int, $startDate: FuzzyDateInt, $endDate: FuzzyDateInt, $sort: [MediaSort]) {
  Page(page: $page, perPage: $perPage) {
    pageInfo {
      total
      perPage
      currentPage
      lastPage
      hasNextPage
    }
    media(
      type: ANIME,
      startDate_greater: $startDate,
      startDate_lesser: $endDate,
      sort: $sort
    ) {
      id
      title {
        romaji
        english
      }
      description
      coverImage {
        large
        extraLarge
      }
      startDate {
        year
        month
        day
      }
      endDate {
        year
        month
        day
      }
      episodes
      genres
      averageScore
      studios {
        nodes {
          name
        }
      }
      tags {
        name
        category
      }
      siteUrl
      format
      season
      seasonYear
    }
  }
}
`

const mediaRelationsQuery = `
query ($id: Int) {
  Media(id: $id) {
    id
    title {
      romaji
      english
    }
    coverImage {
      large
      extraLarge
    }
    startDate {
      year
    }
    format
    relations {
      edges {
        relationType
        node {
          id
          title {
            romaji
            english
          }
          coverImage {
            large
            extraLarge
          }
          startDate {
            year
          }
          format
        }
      }
    }
  }
}
`
